package provider

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidPhoneNumber    = errors.New("invalid phone number format")
	ErrInvalidSpecialization = errors.New("invalid specialization")
	ErrInvalidLicenseNumber  = errors.New("invalid license number")
	ErrPasswordTooWeak       = errors.New("password must be at least 8 characters long")
	ErrNegativeExperience    = errors.New("years_of_experience cannot be negative")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\-\s()]{7,20}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type LicenseNumber struct {
	value string
}

func NewLicenseNumber(s string) (LicenseNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LicenseNumber{}, ErrInvalidLicenseNumber
	}
	return LicenseNumber{value: s}, nil
}

func (l LicenseNumber) Value() string {
	return l.value
}

type ClinicAddress struct {
	Street string
	City   string
	State  string
	Zip    string
}
