package provider

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotVerified = errors.New("provider is not verified")
	ErrNotActive   = errors.New("provider is not active")
)

type Provider struct {
	id                 uuid.UUID
	firstName          string
	lastName           string
	email              Email
	phoneNumber        PhoneNumber
	passwordHash       string
	specialization     Specialization
	licenseNumber      LicenseNumber
	yearsOfExperience  int
	clinicAddress      ClinicAddress
	verificationStatus VerificationStatus
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewProvider(
	firstName, lastName string,
	email Email,
	phoneNumber PhoneNumber,
	passwordHash string,
	specialization Specialization,
	licenseNumber LicenseNumber,
	yearsOfExperience int,
	clinicAddress ClinicAddress,
) (*Provider, error) {
	if yearsOfExperience < 0 {
		return nil, ErrNegativeExperience
	}
	return &Provider{
		id:                 uuid.New(),
		firstName:          firstName,
		lastName:           lastName,
		email:              email,
		phoneNumber:        phoneNumber,
		passwordHash:       passwordHash,
		specialization:     specialization,
		licenseNumber:      licenseNumber,
		yearsOfExperience:  yearsOfExperience,
		clinicAddress:      clinicAddress,
		verificationStatus: VerificationPending,
		isActive:           true,
	}, nil
}

func ReconstructProvider(
	id uuid.UUID,
	firstName, lastName string,
	email Email,
	phoneNumber PhoneNumber,
	passwordHash string,
	specialization Specialization,
	licenseNumber LicenseNumber,
	yearsOfExperience int,
	clinicAddress ClinicAddress,
	verificationStatus VerificationStatus,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Provider {
	return &Provider{
		id:                 id,
		firstName:          firstName,
		lastName:           lastName,
		email:              email,
		phoneNumber:        phoneNumber,
		passwordHash:       passwordHash,
		specialization:     specialization,
		licenseNumber:      licenseNumber,
		yearsOfExperience:  yearsOfExperience,
		clinicAddress:      clinicAddress,
		verificationStatus: verificationStatus,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// CanLogin gates credential checks: unverified or deactivated providers are
// rejected before the password is even compared.
func (p *Provider) CanLogin() error {
	if p.verificationStatus != VerificationVerified {
		return ErrNotVerified
	}
	if !p.isActive {
		return ErrNotActive
	}
	return nil
}

func (p *Provider) ID() uuid.UUID                          { return p.id }
func (p *Provider) FirstName() string                      { return p.firstName }
func (p *Provider) LastName() string                       { return p.lastName }
func (p *Provider) Email() Email                           { return p.email }
func (p *Provider) PhoneNumber() PhoneNumber               { return p.phoneNumber }
func (p *Provider) PasswordHash() string                   { return p.passwordHash }
func (p *Provider) Specialization() Specialization         { return p.specialization }
func (p *Provider) LicenseNumber() LicenseNumber           { return p.licenseNumber }
func (p *Provider) YearsOfExperience() int                 { return p.yearsOfExperience }
func (p *Provider) ClinicAddress() ClinicAddress           { return p.clinicAddress }
func (p *Provider) VerificationStatus() VerificationStatus { return p.verificationStatus }
func (p *Provider) IsActive() bool                         { return p.isActive }
func (p *Provider) CreatedAt() time.Time                   { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time                   { return p.updatedAt }
