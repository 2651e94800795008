package commands

import (
	"context"

	"healthsched/internal/domain/slot"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotSlotOwner = errs.New("slot belongs to another provider")
	ErrSlotBooked   = errs.New("slot is booked")
)

type SlotAdminRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	Delete(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, slotID uuid.UUID, status slot.Status) (bool, error)
}

type SlotCommands interface {
	Delete(ctx context.Context, slotID, providerID uuid.UUID) error
	UpdateStatus(ctx context.Context, slotID, providerID uuid.UUID, status string) error
}

type slotCommandsImpl struct {
	repo SlotAdminRepository
	db   db.DBTX
}

func NewSlotCommands(repo SlotAdminRepository, pool db.DBTX) SlotCommands {
	return &slotCommandsImpl{repo: repo, db: pool}
}

// Delete removes a slot that has not been booked. The SQL guard re-checks
// the status so a booking that lands between the read and the delete still
// wins.
func (s *slotCommandsImpl) Delete(ctx context.Context, slotID, providerID uuid.UUID) error {
	current, err := s.find(ctx, slotID, providerID)
	if err != nil {
		return err
	}
	if err := current.Deletable(); err != nil {
		return ErrSlotBooked
	}

	deleted, err := s.repo.Delete(ctx, s.db, slotID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !deleted {
		return ErrSlotBooked
	}
	return nil
}

// UpdateStatus moves a slot to cancelled or blocked. Booked slots are frozen;
// making one bookable again goes through availability regeneration.
func (s *slotCommandsImpl) UpdateStatus(ctx context.Context, slotID, providerID uuid.UUID, status string) error {
	newStatus, err := slot.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if newStatus == slot.StatusBooked {
		return errs.Mark(slot.ErrInvalidStatus, ErrDomainValidation)
	}

	current, err := s.find(ctx, slotID, providerID)
	if err != nil {
		return err
	}
	if current.IsBooked() {
		return ErrSlotBooked
	}

	updated, err := s.repo.UpdateStatus(ctx, s.db, slotID, newStatus)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return ErrSlotBooked
	}
	return nil
}

func (s *slotCommandsImpl) find(ctx context.Context, slotID, providerID uuid.UUID) (*slot.Slot, error) {
	current, err := s.repo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if current.ProviderID() != providerID {
		return nil, ErrNotSlotOwner
	}
	return current, nil
}
