package components

import (
	"healthsched/internal/domain/availability"
	"healthsched/internal/pkg/clock"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	availability.NewSystemZoneResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProviderCommands,
		commands.NewPatientCommands,
		commands.NewAvailabilityCommands,
		commands.NewBookingCommands,
		commands.NewSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
	),
)
