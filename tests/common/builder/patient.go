package builder

import (
	"time"

	"healthsched/internal/domain/patient"

	"github.com/google/uuid"
)

type PatientBuilder struct {
	email        string
	passwordHash string
	dateOfBirth  time.Time
	active       bool
}

func NewPatientBuilder() *PatientBuilder {
	return &PatientBuilder{
		email:        "pat.jones@example.com",
		passwordHash: "$2a$12$hash",
		dateOfBirth:  time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		active:       true,
	}
}

func (b *PatientBuilder) WithPasswordHash(hash string) *PatientBuilder {
	b.passwordHash = hash
	return b
}

func (b *PatientBuilder) WithEmail(email string) *PatientBuilder {
	b.email = email
	return b
}

func (b *PatientBuilder) WithDateOfBirth(dob time.Time) *PatientBuilder {
	b.dateOfBirth = dob
	return b
}

func (b *PatientBuilder) Inactive() *PatientBuilder {
	b.active = false
	return b
}

func (b *PatientBuilder) Build() (*patient.Patient, error) {
	email, err := patient.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	phone, err := patient.NewPhoneNumber("+1-555-0142")
	if err != nil {
		return nil, err
	}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dob, err := patient.NewBirthDate(b.dateOfBirth, now)
	if err != nil {
		return nil, err
	}
	gender, err := patient.NewGender("female")
	if err != nil {
		return nil, err
	}

	return patient.ReconstructPatient(
		uuid.New(), "Pat", "Jones",
		email, phone, b.passwordHash,
		dob, gender,
		patient.Address{Street: "2 Oak Ave", City: "Springfield", State: "IL", Zip: "62702"},
		nil, nil, nil,
		false, false, b.active,
		now, now,
	), nil
}
