package patient

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidGender      = errors.New("invalid gender value")
	ErrBirthDateInFuture  = errors.New("date of birth must be in the past")
	ErrTooYoung           = errors.New("must be at least 13 years old")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
)

const minAgeYears = 13

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

// BirthDate enforces the registration age policy at construction.
type BirthDate struct {
	value time.Time
}

func NewBirthDate(value time.Time, now time.Time) (BirthDate, error) {
	if !value.Before(now) {
		return BirthDate{}, ErrBirthDateInFuture
	}
	if value.AddDate(minAgeYears, 0, 0).After(now) {
		return BirthDate{}, ErrTooYoung
	}
	return BirthDate{value: value}, nil
}

func (b BirthDate) Value() time.Time {
	return b.value
}

type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

type EmergencyContact struct {
	Name         string
	Phone        string
	Relationship string
}

type InsuranceInfo struct {
	Provider     string
	PolicyNumber string
}
