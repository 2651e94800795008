package repository

import (
	"context"
	"errors"
	"time"

	"healthsched/internal/domain/provider"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/google/uuid"
)

const pgUniqueViolation = "23505"

type ProviderRepository struct {
	db db.DBTX
}

func NewProviderRepository(pool db.DBTX) *ProviderRepository {
	return &ProviderRepository{db: pool}
}

func (r *ProviderRepository) Create(ctx context.Context, tx db.DBTX, p *provider.Provider) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO providers (
			id, first_name, last_name, email, phone_number, password_hash,
			specialization, license_number, years_of_experience,
			clinic_street, clinic_city, clinic_state, clinic_zip,
			verification_status, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
	`,
		p.ID(), p.FirstName(), p.LastName(), p.Email().Value(), p.PhoneNumber().Value(),
		p.PasswordHash(), p.Specialization().String(), p.LicenseNumber().Value(),
		p.YearsOfExperience(),
		p.ClinicAddress().Street, p.ClinicAddress().City, p.ClinicAddress().State, p.ClinicAddress().Zip,
		p.VerificationStatus().String(), p.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("provider already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create provider", err)
	}
	return nil
}

func (r *ProviderRepository) FindByEmail(ctx context.Context, email string) (*provider.Provider, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number, password_hash,
		       specialization, license_number, years_of_experience,
		       clinic_street, clinic_city, clinic_state, clinic_zip,
		       verification_status, is_active, created_at, updated_at
		FROM providers
		WHERE email = $1
	`, email)
	return scanProvider(row)
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone_number, password_hash,
		       specialization, license_number, years_of_experience,
		       clinic_street, clinic_city, clinic_state, clinic_zip,
		       verification_status, is_active, created_at, updated_at
		FROM providers
		WHERE id = $1
	`, id)
	return scanProvider(row)
}

// ExistsBy* back the field-level duplicate checks done before hashing.
// The unique indexes remain the authoritative guard under concurrency.

func (r *ProviderRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM providers WHERE email = $1`, email)
}

func (r *ProviderRepository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM providers WHERE phone_number = $1`, phone)
}

func (r *ProviderRepository) ExistsByLicenseNumber(ctx context.Context, license string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM providers WHERE license_number = $1`, license)
}

func (r *ProviderRepository) exists(ctx context.Context, sql string, arg any) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, sql, arg).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check provider existence", err)
	}
	return true, nil
}

func scanProvider(row pgx.Row) (*provider.Provider, error) {
	var (
		id                                     uuid.UUID
		firstName, lastName, email, phone      string
		passwordHash, specialization, license  string
		yearsOfExperience                      int
		street, city, state, zip, verification string
		isActive                               bool
		createdAt, updatedAt                   time.Time
	)

	err := row.Scan(
		&id, &firstName, &lastName, &email, &phone, &passwordHash,
		&specialization, &license, &yearsOfExperience,
		&street, &city, &state, &zip,
		&verification, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan provider", err)
	}

	emailVO, err := provider.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored provider email is invalid", err)
	}
	phoneVO, err := provider.NewPhoneNumber(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored provider phone is invalid", err)
	}
	specVO, err := provider.NewSpecialization(specialization)
	if err != nil {
		return nil, infra.WrapRepoErr("stored provider specialization is invalid", err)
	}
	licenseVO, err := provider.NewLicenseNumber(license)
	if err != nil {
		return nil, infra.WrapRepoErr("stored provider license is invalid", err)
	}

	return provider.ReconstructProvider(
		id, firstName, lastName, emailVO, phoneVO, passwordHash,
		specVO, licenseVO, yearsOfExperience,
		provider.ClinicAddress{Street: street, City: city, State: state, Zip: zip},
		provider.VerificationStatus(verification), isActive,
		createdAt, updatedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
