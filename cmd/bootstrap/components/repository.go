package components

import (
	"healthsched/internal/infra/db"
	"healthsched/internal/infra/readstore"
	repo_impl "healthsched/internal/infra/repository"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewTxBeginner,
		fx.Annotate(
			repo_impl.NewProviderRepository,
			fx.As(new(commands.ProviderRepository)),
		),
		fx.Annotate(
			repo_impl.NewPatientRepository,
			fx.As(new(commands.PatientRepository)),
		),
		fx.Annotate(
			repo_impl.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
		),
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(commands.SlotWriteRepository)),
			fx.As(new(commands.SlotBookingRepository)),
			fx.As(new(commands.SlotAdminRepository)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) db.TxBeginner {
	return pool
}
