package commands

import (
	"context"
	"time"

	"healthsched/internal/domain/provider"
	reqdto "healthsched/internal/handler/dto/request"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/pkg/errs"
	"healthsched/internal/pkg/jwt"
	"healthsched/internal/pkg/password"
	"healthsched/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDomainValidation    = errs.New("domain validation error")
	ErrDuplicateAccount    = errs.New("account already exists")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrAccountNotVerified  = errs.New("account is not verified")
	ErrAccountInactive     = errs.New("account is inactive")
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrRegistrationFailed  = errs.New("registration failed")
	ErrCredentialHashing   = errs.New("credential hashing failed")
)

type RegisterResult struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type LoginResult struct {
	SubjectID   uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type ProviderRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *provider.Provider) error
	FindByEmail(ctx context.Context, email string) (*provider.Provider, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, license string) (bool, error)
}

type ProviderCommands interface {
	Register(ctx context.Context, req reqdto.RegisterProviderRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type providerCommandsImpl struct {
	repo ProviderRepository
	db   db.DBTX
	jwt  *jwt.Service
}

func NewProviderCommands(repo ProviderRepository, pool db.DBTX, jwtService *jwt.Service) ProviderCommands {
	return &providerCommandsImpl{
		repo: repo,
		db:   pool,
		jwt:  jwtService,
	}
}

func (p *providerCommandsImpl) Register(ctx context.Context, req reqdto.RegisterProviderRequest) (*RegisterResult, error) {
	reg, err := req.ToDomain()
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

	entity, err := provider.NewProvider(
		reg.FirstName, reg.LastName,
		reg.Email, reg.PhoneNumber, hash,
		reg.Specialization, reg.LicenseNumber,
		reg.YearsOfExperience, reg.ClinicAddress,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

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

// checkDuplicates reports every taken field at once rather than failing on
// the first; the unique indexes remain the authoritative guard.
func (p *providerCommandsImpl) checkDuplicates(ctx context.Context, reg *reqdto.ProviderRegistration) error {
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
	if taken, err := p.repo.ExistsByLicenseNumber(ctx, reg.LicenseNumber.Value()); err != nil {
		return errs.Mark(err, ErrRegistrationFailed)
	} else if taken {
		fieldErrs.Add("license_number", "already registered")
	}

	if fieldErrs.HasErrors() {
		return errs.Mark(fieldErrs, ErrDuplicateAccount)
	}
	return nil
}

func (p *providerCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	entity, err := p.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := entity.CanLogin(); err != nil {
		switch err {
		case provider.ErrNotVerified:
			return nil, ErrAccountNotVerified
		default:
			return nil, ErrAccountInactive
		}
	}

	if err := password.ComparePassword(entity.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := p.jwt.GenerateToken(entity.ID(), entity.Email().Value(), jwt.RoleProvider)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		SubjectID:   entity.ID(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
