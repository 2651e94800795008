//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"healthsched/internal/domain/slot"
	"healthsched/internal/infra"
	"healthsched/internal/infra/repository"
	"healthsched/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlotRepo(t *testing.T) (*repository.SlotRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return repository.NewSlotRepository(pool), pool
}

func TestSlotRepositoryFindByID(t *testing.T) {
	columns := []string{
		"id", "availability_id", "provider_id", "start_time", "end_time",
		"status", "patient_id", "booking_reference", "appointment_type",
		"created_at", "updated_at",
	}

	t.Run("reconstructs the stored row", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		slotID := uuid.New()
		availabilityID := uuid.New()
		providerID := uuid.New()
		start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		pool.ExpectQuery(`FROM appointment_slots WHERE id = \$1`).
			WithArgs(slotID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(
				slotID, availabilityID, providerID, start, start.Add(30*time.Minute),
				"available", (*uuid.UUID)(nil), (*string)(nil), "consultation",
				now, now,
			))

		got, err := repo.FindByID(context.Background(), slotID)
		require.NoError(t, err)

		assert.Equal(t, slotID, got.ID())
		assert.Equal(t, providerID, got.ProviderID())
		assert.True(t, got.IsAvailable())
		assert.Equal(t, start, got.Start())
		require.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		slotID := uuid.New()

		pool.ExpectQuery(`FROM appointment_slots WHERE id = \$1`).
			WithArgs(slotID).
			WillReturnRows(pgxmock.NewRows(columns))

		_, err := repo.FindByID(context.Background(), slotID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSlotRepositoryBook(t *testing.T) {
	slotID := uuid.New()
	patientID := uuid.New()

	t.Run("one row affected wins", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		pool.ExpectExec(`UPDATE appointment_slots`).
			WithArgs(slotID, patientID, "BK-REF001").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		won, err := repo.Book(context.Background(), pool, slotID, patientID, "BK-REF001")
		require.NoError(t, err)
		assert.True(t, won)
		require.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("zero rows affected loses cleanly", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		pool.ExpectExec(`UPDATE appointment_slots`).
			WithArgs(slotID, patientID, "BK-REF002").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		won, err := repo.Book(context.Background(), pool, slotID, patientID, "BK-REF002")
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("reference collision maps to duplicate key", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		pool.ExpectExec(`UPDATE appointment_slots`).
			WithArgs(slotID, patientID, "BK-REF003").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Book(context.Background(), pool, slotID, patientID, "BK-REF003")
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestSlotRepositoryBulkCreate(t *testing.T) {
	repo, pool := newSlotRepo(t)

	first := builder.NewSlotBuilder().Build()
	second := builder.NewSlotBuilder().
		WithInterval(first.End(), first.End().Add(30*time.Minute)).
		Build()

	pool.ExpectExec(`INSERT INTO appointment_slots`).
		WithArgs(first.ID(), first.AvailabilityID(), first.ProviderID(), first.Start(), first.End(),
			"available", (*uuid.UUID)(nil), (*string)(nil), "consultation").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectExec(`INSERT INTO appointment_slots`).
		WithArgs(second.ID(), second.AvailabilityID(), second.ProviderID(), second.Start(), second.End(),
			"available", (*uuid.UUID)(nil), (*string)(nil), "consultation").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.BulkCreate(context.Background(), pool, []*slot.Slot{first, second})
	require.NoError(t, err)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestSlotRepositoryDelete(t *testing.T) {
	slotID := uuid.New()

	t.Run("guard matched", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		pool.ExpectExec(`DELETE FROM appointment_slots`).
			WithArgs(slotID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.Delete(context.Background(), pool, slotID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("booked row is skipped by the guard", func(t *testing.T) {
		repo, pool := newSlotRepo(t)
		pool.ExpectExec(`DELETE FROM appointment_slots`).
			WithArgs(slotID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.Delete(context.Background(), pool, slotID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
