//go:build unit

package commands_test

import (
	"context"
	"testing"

	"healthsched/internal/domain/slot"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/usecase/commands"
	"healthsched/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotAdminRepo struct {
	current *slot.Slot
	findErr error

	deleted       bool
	deleteMatched bool
	deleteErr     error

	updatedTo     *slot.Status
	updateMatched bool
	updateErr     error
}

func (f *fakeSlotAdminRepo) FindByID(_ context.Context, _ uuid.UUID) (*slot.Slot, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.current, nil
}

func (f *fakeSlotAdminRepo) Delete(_ context.Context, _ db.DBTX, _ uuid.UUID) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	f.deleted = f.deleteMatched
	return f.deleteMatched, nil
}

func (f *fakeSlotAdminRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status slot.Status) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	if f.updateMatched {
		f.updatedTo = &status
	}
	return f.updateMatched, nil
}

func TestSlotCommandsDelete(t *testing.T) {
	providerID := uuid.New()
	slotID := uuid.New()

	t.Run("deletes an unbooked slot", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{
			current:       builder.NewSlotBuilder().WithProviderID(providerID).Build(),
			deleteMatched: true,
		}
		uc := commands.NewSlotCommands(repo, nil)

		require.NoError(t, uc.Delete(context.Background(), slotID, providerID))
		assert.True(t, repo.deleted)
	})

	t.Run("missing slot", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{findErr: infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)}
		uc := commands.NewSlotCommands(repo, nil)

		err := uc.Delete(context.Background(), slotID, providerID)
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("another provider's slot", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{current: builder.NewSlotBuilder().WithProviderID(uuid.New()).Build()}
		uc := commands.NewSlotCommands(repo, nil)

		err := uc.Delete(context.Background(), slotID, providerID)
		assert.ErrorIs(t, err, commands.ErrNotSlotOwner)
	})

	t.Run("booked slot is protected", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{
			current: builder.NewSlotBuilder().WithProviderID(providerID).Booked(uuid.New(), "BK-KEEP01").Build(),
		}
		uc := commands.NewSlotCommands(repo, nil)

		err := uc.Delete(context.Background(), slotID, providerID)
		assert.ErrorIs(t, err, commands.ErrSlotBooked)
		assert.False(t, repo.deleted)
	})

	t.Run("booking landing between read and delete still wins", func(t *testing.T) {
		// The read sees an available slot but the guarded DELETE matches no row.
		repo := &fakeSlotAdminRepo{
			current:       builder.NewSlotBuilder().WithProviderID(providerID).Build(),
			deleteMatched: false,
		}
		uc := commands.NewSlotCommands(repo, nil)

		err := uc.Delete(context.Background(), slotID, providerID)
		assert.ErrorIs(t, err, commands.ErrSlotBooked)
	})
}

func TestSlotCommandsUpdateStatus(t *testing.T) {
	providerID := uuid.New()
	slotID := uuid.New()

	t.Run("blocks an available slot", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{
			current:       builder.NewSlotBuilder().WithProviderID(providerID).Build(),
			updateMatched: true,
		}
		uc := commands.NewSlotCommands(repo, nil)

		require.NoError(t, uc.UpdateStatus(context.Background(), slotID, providerID, "blocked"))
		require.NotNil(t, repo.updatedTo)
		assert.Equal(t, slot.StatusBlocked, *repo.updatedTo)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := commands.NewSlotCommands(&fakeSlotAdminRepo{}, nil)

		err := uc.UpdateStatus(context.Background(), slotID, providerID, "reserved")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("booked is not a settable target", func(t *testing.T) {
		uc := commands.NewSlotCommands(&fakeSlotAdminRepo{}, nil)

		err := uc.UpdateStatus(context.Background(), slotID, providerID, "booked")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("booked slots are frozen", func(t *testing.T) {
		repo := &fakeSlotAdminRepo{
			current: builder.NewSlotBuilder().WithProviderID(providerID).Booked(uuid.New(), "BK-KEEP02").Build(),
		}
		uc := commands.NewSlotCommands(repo, nil)

		err := uc.UpdateStatus(context.Background(), slotID, providerID, "cancelled")
		assert.ErrorIs(t, err, commands.ErrSlotBooked)
		assert.Nil(t, repo.updatedTo)
	})
}
