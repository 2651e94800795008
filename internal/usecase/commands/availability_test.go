//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthsched/internal/domain/availability"
	"healthsched/internal/domain/slot"
	reqdto "healthsched/internal/handler/dto/request"
	"healthsched/internal/infra/db"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/shared"
	"healthsched/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	err     error
	created *availability.Availability
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, _ db.DBTX, a *availability.Availability) error {
	if f.err != nil {
		return f.err
	}
	f.created = a
	return nil
}

type fakeSlotWriteRepo struct {
	existing []*slot.Slot
	findErr  error
	bulkErr  error
	created  []*slot.Slot
}

func (f *fakeSlotWriteRepo) FindConflicting(_ context.Context, _ db.DBTX, _ uuid.UUID, _, _ time.Time) ([]*slot.Slot, error) {
	return f.existing, f.findErr
}

func (f *fakeSlotWriteRepo) BulkCreate(_ context.Context, _ db.DBTX, slots []*slot.Slot) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.created = slots
	return nil
}

func validCreateRequest() reqdto.CreateAvailabilityRequest {
	return reqdto.CreateAvailabilityRequest{
		Date:                "2025-06-02",
		StartTime:           "09:00",
		EndTime:             "10:00",
		Timezone:            "UTC",
		SlotDurationMinutes: 30,
		Location:            reqdto.LocationRequest{Type: "clinic", Address: "12 Main St"},
	}
}

func newAvailabilityCommands(t *testing.T, availRepo *fakeAvailabilityRepo, slotRepo *fakeSlotWriteRepo) (commands.AvailabilityCommands, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	uc := commands.NewAvailabilityCommands(availRepo, slotRepo, availability.NewSystemZoneResolver(), pool, nil)
	return uc, pool
}

func TestAvailabilityCommandsCreate(t *testing.T) {
	providerID := uuid.New()

	t.Run("persists availability and all generated slots", func(t *testing.T) {
		availRepo := &fakeAvailabilityRepo{}
		slotRepo := &fakeSlotWriteRepo{}
		uc, pool := newAvailabilityCommands(t, availRepo, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), validCreateRequest(), providerID)
		require.NoError(t, err)

		want := &commands.CreateAvailabilityResult{
			SlotsCreated:               2,
			DateRange:                  commands.DateRange{Start: "2025-06-02", End: "2025-06-02"},
			TotalAppointmentsAvailable: 2,
		}
		if diff := cmp.Diff(want, result, cmpopts.IgnoreFields(commands.CreateAvailabilityResult{}, "AvailabilityID")); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, availRepo.created)
		assert.Equal(t, providerID, availRepo.created.ProviderID())
		require.Len(t, slotRepo.created, 2)
		assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), slotRepo.created[0].Start())
	})

	t.Run("weekly recurrence spans every expanded date", func(t *testing.T) {
		req := validCreateRequest()
		req.IsRecurring = true
		req.RecurrencePattern = "weekly"
		req.RecurrenceEndDate = "2025-06-16"

		slotRepo := &fakeSlotWriteRepo{}
		uc, pool := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), req, providerID)
		require.NoError(t, err)

		assert.Equal(t, 6, result.SlotsCreated)
		assert.Equal(t, commands.DateRange{Start: "2025-06-02", End: "2025-06-16"}, result.DateRange)
	})

	t.Run("drops candidates colliding with existing slots", func(t *testing.T) {
		taken := builder.NewSlotBuilder().
			WithProviderID(providerID).
			WithInterval(
				time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			).
			Build()

		slotRepo := &fakeSlotWriteRepo{existing: []*slot.Slot{taken}}
		uc, pool := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), validCreateRequest(), providerID)
		require.NoError(t, err)

		assert.Equal(t, 1, result.SlotsCreated)
		require.Len(t, slotRepo.created, 1)
		assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), slotRepo.created[0].Start())
	})

	t.Run("cancelled slots do not block regeneration", func(t *testing.T) {
		cancelled := builder.NewSlotBuilder().
			WithProviderID(providerID).
			WithInterval(
				time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			).
			WithStatus(slot.StatusCancelled).
			Build()

		slotRepo := &fakeSlotWriteRepo{existing: []*slot.Slot{cancelled}}
		uc, pool := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), validCreateRequest(), providerID)
		require.NoError(t, err)
		assert.Equal(t, 2, result.SlotsCreated)
	})

	t.Run("every candidate conflicting still persists the availability", func(t *testing.T) {
		taken := builder.NewSlotBuilder().
			WithProviderID(providerID).
			WithInterval(
				time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
			).
			Build()

		availRepo := &fakeAvailabilityRepo{}
		slotRepo := &fakeSlotWriteRepo{existing: []*slot.Slot{taken}}
		uc, pool := newAvailabilityCommands(t, availRepo, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), validCreateRequest(), providerID)
		require.NoError(t, err)

		assert.Equal(t, 0, result.SlotsCreated)
		assert.Equal(t, 0, result.TotalAppointmentsAvailable)
		require.NotNil(t, availRepo.created)
		assert.Empty(t, slotRepo.created)
	})

	t.Run("recurrence end before start creates zero slots without failing", func(t *testing.T) {
		req := validCreateRequest()
		req.IsRecurring = true
		req.RecurrencePattern = "daily"
		req.RecurrenceEndDate = "2025-05-01"

		availRepo := &fakeAvailabilityRepo{}
		slotRepo := &fakeSlotWriteRepo{}
		uc, pool := newAvailabilityCommands(t, availRepo, slotRepo)
		pool.ExpectBegin()
		pool.ExpectCommit()

		result, err := uc.Create(context.Background(), req, providerID)
		require.NoError(t, err)

		assert.Equal(t, 0, result.SlotsCreated)
		assert.Equal(t, commands.DateRange{Start: "2025-06-02", End: "2025-06-02"}, result.DateRange)
		require.NotNil(t, availRepo.created)
		assert.Empty(t, slotRepo.created)
	})

	t.Run("field level failures are collected and marked", func(t *testing.T) {
		req := validCreateRequest()
		req.Date = "06/02/2025"
		req.SlotDurationMinutes = 0

		uc, _ := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, &fakeSlotWriteRepo{})

		_, err := uc.Create(context.Background(), req, providerID)
		require.ErrorIs(t, err, commands.ErrDomainValidation)

		fields, ok := shared.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "date")
		assert.Contains(t, fields, "slot_duration_minutes")
	})

	t.Run("slot duration must divide the window", func(t *testing.T) {
		req := validCreateRequest()
		req.SlotDurationMinutes = 45

		uc, _ := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, &fakeSlotWriteRepo{})

		_, err := uc.Create(context.Background(), req, providerID)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.ErrorIs(t, err, availability.ErrInvalidSlotDuration)
	})

	t.Run("persistence failure rolls the batch back", func(t *testing.T) {
		slotRepo := &fakeSlotWriteRepo{bulkErr: errors.New("connection reset")}
		uc, pool := newAvailabilityCommands(t, &fakeAvailabilityRepo{}, slotRepo)
		pool.ExpectBegin()
		pool.ExpectRollback()

		_, err := uc.Create(context.Background(), validCreateRequest(), providerID)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		require.NoError(t, pool.ExpectationsWereMet())
	})
}
