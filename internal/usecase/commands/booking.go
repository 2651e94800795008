package commands

import (
	"context"
	"errors"

	"healthsched/internal/domain/slot"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/infra/lock"
	"healthsched/internal/observability/metrics"
	"healthsched/internal/pkg/bookingref"
	"healthsched/internal/pkg/clock"
	"healthsched/internal/pkg/errs"
	"healthsched/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound     = errs.New("slot not found")
	ErrSlotNotAvailable = errs.New("slot is not available")
	ErrBookingContended = errs.New("slot is being booked by another request")
)

type BookingResult struct {
	Slot *queries.SlotView
}

type SlotBookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	Book(ctx context.Context, tx db.DBTX, slotID, patientID uuid.UUID, reference string) (bool, error)
}

type BookingCommands interface {
	BookSlot(ctx context.Context, slotID, patientID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	slotRepo SlotBookingRepository
	slots    queries.SlotQueries
	locker   lock.SlotLocker
	db       db.DBTX
	clock    clock.Clock
	metrics  *metrics.SchedulingMetrics
}

func NewBookingCommands(
	slotRepo SlotBookingRepository,
	slots queries.SlotQueries,
	locker lock.SlotLocker,
	pool db.DBTX,
	clk clock.Clock,
	schedMetrics *metrics.SchedulingMetrics,
) BookingCommands {
	return &bookingCommandsImpl{
		slotRepo: slotRepo,
		slots:    slots,
		locker:   locker,
		db:       pool,
		clock:    clk,
		metrics:  schedMetrics,
	}
}

// BookSlot books one slot for one patient at most once. The redis lock keeps
// concurrent attempts on the same slot from racing to the database; the
// conditional UPDATE inside is the authoritative guard, so correctness does
// not depend on the lock.
func (b *bookingCommandsImpl) BookSlot(ctx context.Context, slotID, patientID uuid.UUID) (*BookingResult, error) {
	started := b.clock.Now()

	var view *queries.SlotView
	err := b.locker.WithSlotLock(ctx, slotID, func(ctx context.Context) error {
		var lockedErr error
		view, lockedErr = b.bookLocked(ctx, slotID, patientID)
		return lockedErr
	})
	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			err = errs.Mark(err, ErrBookingContended)
		}
		b.metrics.ObserveBooking(bookingOutcome(err), b.clock.Now().Sub(started).Seconds())
		return nil, err
	}

	b.metrics.ObserveBooking("booked", b.clock.Now().Sub(started).Seconds())
	return &BookingResult{Slot: view}, nil
}

func (b *bookingCommandsImpl) bookLocked(ctx context.Context, slotID, patientID uuid.UUID) (*queries.SlotView, error) {
	current, err := b.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !current.IsAvailable() {
		return nil, ErrSlotNotAvailable
	}

	reference := bookingref.New()
	won, err := b.slotRepo.Book(ctx, b.db, slotID, patientID, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !won {
		// Lost the race between the read above and the update: the status
		// guard in the UPDATE matched no row.
		return nil, ErrSlotNotAvailable
	}

	return b.slots.GetByID(ctx, slotID)
}

func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotFound):
		return "not_found"
	case errors.Is(err, ErrSlotNotAvailable):
		return "not_available"
	case errors.Is(err, ErrBookingContended):
		return "contended"
	default:
		return "error"
	}
}
