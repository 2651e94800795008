package bootstrap

import (
	"time"

	"healthsched/internal/pkg/config"
	"healthsched/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	providerDuration, err := time.ParseDuration(cfg.JWT.ProviderDuration)
	if err != nil {
		panic("invalid JWT_PROVIDER_DURATION: " + err.Error())
	}

	patientDuration, err := time.ParseDuration(cfg.JWT.PatientDuration)
	if err != nil {
		panic("invalid JWT_PATIENT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, providerDuration, patientDuration)
}
