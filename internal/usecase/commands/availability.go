package commands

import (
	"context"
	"log/slog"
	"time"

	"healthsched/internal/domain/availability"
	"healthsched/internal/domain/slot"
	reqdto "healthsched/internal/handler/dto/request"
	"healthsched/internal/infra/db"
	"healthsched/internal/observability/metrics"
	"healthsched/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDatabaseOperationFailed = errs.New("database operation failed")

type DateRange struct {
	Start string
	End   string
}

type CreateAvailabilityResult struct {
	AvailabilityID             uuid.UUID
	SlotsCreated               int
	DateRange                  DateRange
	TotalAppointmentsAvailable int
}

type AvailabilityRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *availability.Availability) error
}

type SlotWriteRepository interface {
	BulkCreate(ctx context.Context, tx db.DBTX, slots []*slot.Slot) error
	FindConflicting(ctx context.Context, tx db.DBTX, providerID uuid.UUID, from, to time.Time) ([]*slot.Slot, error)
}

type AvailabilityCommands interface {
	Create(ctx context.Context, req reqdto.CreateAvailabilityRequest, providerID uuid.UUID) (*CreateAvailabilityResult, error)
}

// Each slot holds exactly one appointment.
const maxAppointmentsPerSlot = 1

type availabilityCommandsImpl struct {
	availabilityRepo AvailabilityRepository
	slotRepo         SlotWriteRepository
	generator        *availability.Generator
	zones            availability.ZoneResolver
	db               db.TxBeginner
	metrics          *metrics.SchedulingMetrics
}

func NewAvailabilityCommands(
	availabilityRepo AvailabilityRepository,
	slotRepo SlotWriteRepository,
	zones availability.ZoneResolver,
	pool db.TxBeginner,
	schedMetrics *metrics.SchedulingMetrics,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		availabilityRepo: availabilityRepo,
		slotRepo:         slotRepo,
		generator:        availability.NewGenerator(zones),
		zones:            zones,
		db:               pool,
		metrics:          schedMetrics,
	}
}

// Create validates the request, expands its recurrence into dates, generates
// candidate slots per date, drops candidates that collide with existing
// non-cancelled slots, and persists the availability plus the surviving slots
// in one transaction. The whole batch commits or none of it does. The
// availability record is kept even when every candidate is dropped; the
// result then reports zero slots.
func (a *availabilityCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateAvailabilityRequest,
	providerID uuid.UUID,
) (*CreateAvailabilityResult, error) {
	entity, err := req.ToDomain(a.zones, providerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	dates := entity.Dates()
	candidates, err := a.generateCandidates(entity, dates)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	created, err := a.persist(ctx, entity, candidates)
	if err != nil {
		return nil, err
	}

	a.metrics.ObserveSlotsGenerated(entity.AppointmentType().String(), created)

	return &CreateAvailabilityResult{
		AvailabilityID:             entity.ID(),
		SlotsCreated:               created,
		DateRange:                  dateRange(entity, dates),
		TotalAppointmentsAvailable: created * maxAppointmentsPerSlot,
	}, nil
}

// dateRange degenerates to the requested start date when the recurrence
// expands to nothing (end date before start).
func dateRange(entity *availability.Availability, dates []availability.Date) DateRange {
	if len(dates) == 0 {
		d := entity.Date().String()
		return DateRange{Start: d, End: d}
	}
	return DateRange{Start: dates[0].String(), End: dates[len(dates)-1].String()}
}

func (a *availabilityCommandsImpl) generateCandidates(
	entity *availability.Availability,
	dates []availability.Date,
) ([]availability.SlotTime, error) {
	var candidates []availability.SlotTime
	for _, date := range dates {
		times, err := a.generator.Generate(
			date,
			entity.Window(),
			entity.SlotDuration(),
			entity.BreakDuration(),
			entity.Timezone(),
		)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, times...)
	}
	return candidates, nil
}

func (a *availabilityCommandsImpl) persist(
	ctx context.Context,
	entity *availability.Availability,
	candidates []availability.SlotTime,
) (int, error) {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := a.availabilityRepo.Create(ctx, tx, entity); err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var slots []*slot.Slot
	if len(candidates) > 0 {
		// One bounded query covers the whole candidate span; candidates are
		// ascending so first/last give the range.
		existing, err := a.slotRepo.FindConflicting(
			ctx, tx, entity.ProviderID(),
			candidates[0].Start, candidates[len(candidates)-1].End,
		)
		if err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slots, err = a.buildSlots(entity, candidates, existing)
		if err != nil {
			return 0, errs.Mark(err, ErrDomainValidation)
		}
	}

	if len(slots) > 0 {
		if err := a.slotRepo.BulkCreate(ctx, tx, slots); err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return len(slots), nil
}

// buildSlots filters candidates against both pre-existing slots and the
// candidates already accepted in this call, so an overlapping recurrence
// cannot double-book its own batch.
func (a *availabilityCommandsImpl) buildSlots(
	entity *availability.Availability,
	candidates []availability.SlotTime,
	existing []*slot.Slot,
) ([]*slot.Slot, error) {
	accepted := make([]*slot.Slot, 0, len(candidates))
	for _, c := range candidates {
		if slot.ConflictsWithAny(existing, c.Start, c.End) {
			continue
		}
		if slot.ConflictsWithAny(accepted, c.Start, c.End) {
			continue
		}
		s, err := slot.NewSlot(entity.ID(), entity.ProviderID(), c, entity.AppointmentType())
		if err != nil {
			return nil, err
		}
		accepted = append(accepted, s)
	}
	return accepted, nil
}
