package commands

import (
	"context"

	"healthsched/internal/domain/patient"
	reqdto "healthsched/internal/handler/dto/request"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/pkg/clock"
	"healthsched/internal/pkg/errs"
	"healthsched/internal/pkg/jwt"
	"healthsched/internal/pkg/password"
	"healthsched/internal/usecase/shared"
)

type PatientRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *patient.Patient) error
	FindByEmail(ctx context.Context, email string) (*patient.Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
}

type PatientCommands interface {
	Register(ctx context.Context, req reqdto.RegisterPatientRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type patientCommandsImpl struct {
	repo  PatientRepository
	db    db.DBTX
	jwt   *jwt.Service
	clock clock.Clock
}

func NewPatientCommands(repo PatientRepository, pool db.DBTX, jwtService *jwt.Service, clk clock.Clock) PatientCommands {
	return &patientCommandsImpl{
		repo:  repo,
		db:    pool,
		jwt:   jwtService,
		clock: clk,
	}
}

func (p *patientCommandsImpl) Register(ctx context.Context, req reqdto.RegisterPatientRequest) (*RegisterResult, error) {
	reg, err := req.ToDomain(p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := p.checkDuplicates(ctx, reg); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(reg.Password.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrCredentialHashing)
	}

	entity := patient.NewPatient(
		reg.FirstName, reg.LastName,
		reg.Email, reg.PhoneNumber, hash,
		reg.DateOfBirth, reg.Gender, reg.Address,
		reg.EmergencyContact, reg.MedicalHistory, reg.InsuranceInfo,
	)

	if err := p.repo.Create(ctx, p.db, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateAccount)
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	return &RegisterResult{
		ID:        entity.ID(),
		Email:     entity.Email().Value(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
	}, nil
}

func (p *patientCommandsImpl) checkDuplicates(ctx context.Context, reg *reqdto.PatientRegistration) error {
	fieldErrs := shared.NewFieldErrors()

	if taken, err := p.repo.ExistsByEmail(ctx, reg.Email.Value()); err != nil {
		return errs.Mark(err, ErrRegistrationFailed)
	} else if taken {
		fieldErrs.Add("email", "already registered")
	}
	if taken, err := p.repo.ExistsByPhoneNumber(ctx, reg.PhoneNumber.Value()); err != nil {
		return errs.Mark(err, ErrRegistrationFailed)
	} else if taken {
		fieldErrs.Add("phone_number", "already registered")
	}

	if fieldErrs.HasErrors() {
		return errs.Mark(fieldErrs, ErrDuplicateAccount)
	}
	return nil
}

func (p *patientCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	entity, err := p.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := entity.CanLogin(); err != nil {
		return nil, ErrAccountInactive
	}

	if err := password.ComparePassword(entity.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := p.jwt.GenerateToken(entity.ID(), entity.Email().Value(), jwt.RolePatient)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		SubjectID:   entity.ID(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
