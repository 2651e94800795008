package repository

import (
	"context"
	"errors"
	"time"

	"healthsched/internal/domain/patient"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PatientRepository struct {
	db db.DBTX
}

func NewPatientRepository(pool db.DBTX) *PatientRepository {
	return &PatientRepository{db: pool}
}

func (r *PatientRepository) Create(ctx context.Context, tx db.DBTX, p *patient.Patient) error {
	var (
		ecName, ecPhone, ecRelationship *string
		insProvider, insPolicy          *string
	)
	if ec := p.EmergencyContact(); ec != nil {
		ecName, ecPhone, ecRelationship = &ec.Name, &ec.Phone, &ec.Relationship
	}
	if ins := p.InsuranceInfo(); ins != nil {
		insProvider, insPolicy = &ins.Provider, &ins.PolicyNumber
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO patients (
			id, first_name, last_name, email, phone_number, password_hash,
			date_of_birth, gender,
			street, city, state, zip,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
			medical_history, insurance_provider, insurance_policy_number,
			email_verified, phone_verified, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		          $13, $14, $15, $16, $17, $18, $19, $20, $21, now(), now())
	`,
		p.ID(), p.FirstName(), p.LastName(), p.Email().Value(), p.PhoneNumber().Value(),
		p.PasswordHash(), p.DateOfBirth().Value(), p.Gender().String(),
		p.Address().Street, p.Address().City, p.Address().State, p.Address().Zip,
		ecName, ecPhone, ecRelationship,
		p.MedicalHistory(), insProvider, insPolicy,
		p.EmailVerified(), p.PhoneVerified(), p.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("patient already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create patient", err)
	}
	return nil
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*patient.Patient, error) {
	row := r.db.QueryRow(ctx, patientSelect+` WHERE email = $1`, email)
	return scanPatient(row)
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	row := r.db.QueryRow(ctx, patientSelect+` WHERE id = $1`, id)
	return scanPatient(row)
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM patients WHERE email = $1`, email)
}

func (r *PatientRepository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM patients WHERE phone_number = $1`, phone)
}

func (r *PatientRepository) exists(ctx context.Context, sql string, arg any) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, sql, arg).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check patient existence", err)
	}
	return true, nil
}

const patientSelect = `
	SELECT id, first_name, last_name, email, phone_number, password_hash,
	       date_of_birth, gender,
	       street, city, state, zip,
	       emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
	       medical_history, insurance_provider, insurance_policy_number,
	       email_verified, phone_verified, is_active, created_at, updated_at
	FROM patients`

func scanPatient(row pgx.Row) (*patient.Patient, error) {
	var (
		id                              uuid.UUID
		firstName, lastName             string
		email, phone, passwordHash      string
		dateOfBirth                     time.Time
		gender                          string
		street, city, state, zip        string
		ecName, ecPhone, ecRelationship *string
		medicalHistory                  []string
		insProvider, insPolicy          *string
		emailVerified, phoneVerified    bool
		isActive                        bool
		createdAt, updatedAt            time.Time
	)

	err := row.Scan(
		&id, &firstName, &lastName, &email, &phone, &passwordHash,
		&dateOfBirth, &gender,
		&street, &city, &state, &zip,
		&ecName, &ecPhone, &ecRelationship,
		&medicalHistory, &insProvider, &insPolicy,
		&emailVerified, &phoneVerified, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("patient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan patient", err)
	}

	emailVO, err := patient.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored patient email is invalid", err)
	}
	phoneVO, err := patient.NewPhoneNumber(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored patient phone is invalid", err)
	}
	genderVO, err := patient.NewGender(gender)
	if err != nil {
		return nil, infra.WrapRepoErr("stored patient gender is invalid", err)
	}
	// Stored rows already passed the registration age policy.
	birthVO, err := patient.NewBirthDate(dateOfBirth, time.Now())
	if err != nil {
		return nil, infra.WrapRepoErr("stored patient birth date is invalid", err)
	}

	var ec *patient.EmergencyContact
	if ecName != nil {
		ec = &patient.EmergencyContact{Name: *ecName}
		if ecPhone != nil {
			ec.Phone = *ecPhone
		}
		if ecRelationship != nil {
			ec.Relationship = *ecRelationship
		}
	}
	var ins *patient.InsuranceInfo
	if insProvider != nil {
		ins = &patient.InsuranceInfo{Provider: *insProvider}
		if insPolicy != nil {
			ins.PolicyNumber = *insPolicy
		}
	}

	return patient.ReconstructPatient(
		id, firstName, lastName, emailVO, phoneVO, passwordHash,
		birthVO, genderVO,
		patient.Address{Street: street, City: city, State: state, Zip: zip},
		ec, medicalHistory, ins,
		emailVerified, phoneVerified, isActive,
		createdAt, updatedAt,
	), nil
}
