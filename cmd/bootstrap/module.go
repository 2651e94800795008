package bootstrap

import (
	"healthsched/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	MetricsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
