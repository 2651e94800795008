package builder

import (
	"time"

	"healthsched/internal/domain/provider"

	"github.com/google/uuid"
)

type ProviderBuilder struct {
	email          string
	phone          string
	passwordHash   string
	specialization string
	status         provider.VerificationStatus
	active         bool
}

func NewProviderBuilder() *ProviderBuilder {
	return &ProviderBuilder{
		email:          "dr.smith@clinic.example",
		phone:          "+1-555-0100",
		passwordHash:   "$2a$12$hash",
		specialization: "cardiology",
		status:         provider.VerificationVerified,
		active:         true,
	}
}

func (b *ProviderBuilder) WithEmail(email string) *ProviderBuilder {
	b.email = email
	return b
}

func (b *ProviderBuilder) WithPasswordHash(hash string) *ProviderBuilder {
	b.passwordHash = hash
	return b
}

func (b *ProviderBuilder) WithSpecialization(s string) *ProviderBuilder {
	b.specialization = s
	return b
}

func (b *ProviderBuilder) Pending() *ProviderBuilder {
	b.status = provider.VerificationPending
	return b
}

func (b *ProviderBuilder) Inactive() *ProviderBuilder {
	b.active = false
	return b
}

func (b *ProviderBuilder) Build() (*provider.Provider, error) {
	email, err := provider.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	phone, err := provider.NewPhoneNumber(b.phone)
	if err != nil {
		return nil, err
	}
	spec, err := provider.NewSpecialization(b.specialization)
	if err != nil {
		return nil, err
	}
	license, err := provider.NewLicenseNumber("LIC-12345")
	if err != nil {
		return nil, err
	}

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return provider.ReconstructProvider(
		uuid.New(), "Jane", "Smith",
		email, phone, b.passwordHash,
		spec, license, 10,
		provider.ClinicAddress{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"},
		b.status, b.active,
		now, now,
	), nil
}
