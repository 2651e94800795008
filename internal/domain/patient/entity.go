package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotActive = errors.New("patient is not active")

type Patient struct {
	id               uuid.UUID
	firstName        string
	lastName         string
	email            Email
	phoneNumber      PhoneNumber
	passwordHash     string
	dateOfBirth      BirthDate
	gender           Gender
	address          Address
	emergencyContact *EmergencyContact
	medicalHistory   []string
	insuranceInfo    *InsuranceInfo
	emailVerified    bool
	phoneVerified    bool
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPatient(
	firstName, lastName string,
	email Email,
	phoneNumber PhoneNumber,
	passwordHash string,
	dateOfBirth BirthDate,
	gender Gender,
	address Address,
	emergencyContact *EmergencyContact,
	medicalHistory []string,
	insuranceInfo *InsuranceInfo,
) *Patient {
	return &Patient{
		id:               uuid.New(),
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phoneNumber:      phoneNumber,
		passwordHash:     passwordHash,
		dateOfBirth:      dateOfBirth,
		gender:           gender,
		address:          address,
		emergencyContact: emergencyContact,
		medicalHistory:   medicalHistory,
		insuranceInfo:    insuranceInfo,
		isActive:         true,
	}
}

func ReconstructPatient(
	id uuid.UUID,
	firstName, lastName string,
	email Email,
	phoneNumber PhoneNumber,
	passwordHash string,
	dateOfBirth BirthDate,
	gender Gender,
	address Address,
	emergencyContact *EmergencyContact,
	medicalHistory []string,
	insuranceInfo *InsuranceInfo,
	emailVerified, phoneVerified, isActive bool,
	createdAt, updatedAt time.Time,
) *Patient {
	return &Patient{
		id:               id,
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phoneNumber:      phoneNumber,
		passwordHash:     passwordHash,
		dateOfBirth:      dateOfBirth,
		gender:           gender,
		address:          address,
		emergencyContact: emergencyContact,
		medicalHistory:   medicalHistory,
		insuranceInfo:    insuranceInfo,
		emailVerified:    emailVerified,
		phoneVerified:    phoneVerified,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Patient) CanLogin() error {
	if !p.isActive {
		return ErrNotActive
	}
	return nil
}

func (p *Patient) ID() uuid.UUID                       { return p.id }
func (p *Patient) FirstName() string                   { return p.firstName }
func (p *Patient) LastName() string                    { return p.lastName }
func (p *Patient) Email() Email                        { return p.email }
func (p *Patient) PhoneNumber() PhoneNumber            { return p.phoneNumber }
func (p *Patient) PasswordHash() string                { return p.passwordHash }
func (p *Patient) DateOfBirth() BirthDate              { return p.dateOfBirth }
func (p *Patient) Gender() Gender                      { return p.gender }
func (p *Patient) Address() Address                    { return p.address }
func (p *Patient) EmergencyContact() *EmergencyContact { return p.emergencyContact }
func (p *Patient) MedicalHistory() []string            { return p.medicalHistory }
func (p *Patient) InsuranceInfo() *InsuranceInfo       { return p.insuranceInfo }
func (p *Patient) EmailVerified() bool                 { return p.emailVerified }
func (p *Patient) PhoneVerified() bool                 { return p.phoneVerified }
func (p *Patient) IsActive() bool                      { return p.isActive }
func (p *Patient) CreatedAt() time.Time                { return p.createdAt }
func (p *Patient) UpdatedAt() time.Time                { return p.updatedAt }
