package repository

import (
	"context"
	"errors"
	"time"

	"healthsched/internal/domain/availability"
	"healthsched/internal/domain/slot"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(pool db.DBTX) *SlotRepository {
	return &SlotRepository{db: pool}
}

const slotSelect = `
	SELECT id, availability_id, provider_id, start_time, end_time,
	       status, patient_id, booking_reference, appointment_type,
	       created_at, updated_at
	FROM appointment_slots`

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row := r.db.QueryRow(ctx, slotSelect+` WHERE id = $1`, id)
	return scanSlot(row)
}

// FindConflicting returns the provider's slots whose [start, end) interval
// intersects the given range and whose status still claims the interval.
// Bounded by the range rather than scanning the provider's full history.
func (r *SlotRepository) FindConflicting(ctx context.Context, tx db.DBTX, providerID uuid.UUID, from, to time.Time) ([]*slot.Slot, error) {
	rows, err := tx.Query(ctx, slotSelect+`
		WHERE provider_id = $1
		  AND status <> 'cancelled'
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query conflicting slots", err)
	}
	defer rows.Close()

	var slots []*slot.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflicting slots", err)
	}
	return slots, nil
}

func (r *SlotRepository) BulkCreate(ctx context.Context, tx db.DBTX, slots []*slot.Slot) error {
	for _, s := range slots {
		_, err := tx.Exec(ctx, `
			INSERT INTO appointment_slots (
				id, availability_id, provider_id, start_time, end_time,
				status, patient_id, booking_reference, appointment_type,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		`,
			s.ID(), s.AvailabilityID(), s.ProviderID(), s.Start(), s.End(),
			s.Status().String(), s.PatientID(), s.BookingReference(), s.AppointmentType().String(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return infra.WrapRepoErr("slot already exists", err, infra.KindDuplicateKey)
			}
			return infra.WrapRepoErr("failed to create slot", err)
		}
	}
	return nil
}

// Book is the authoritative compare-and-swap: the status guard in the WHERE
// clause means at most one concurrent caller sees a row affected. A false
// return with no error is the loser's result.
func (r *SlotRepository) Book(ctx context.Context, tx db.DBTX, slotID, patientID uuid.UUID, reference string) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE appointment_slots
		SET status = 'booked',
		    patient_id = $2,
		    booking_reference = $3,
		    updated_at = now()
		WHERE id = $1
		  AND status = 'available'
	`, slotID, patientID, reference)
	if err != nil {
		if isUniqueViolation(err) {
			return false, infra.WrapRepoErr("booking reference collision", err, infra.KindDuplicateKey)
		}
		return false, infra.WrapRepoErr("failed to book slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus serves the collaborator paths that cancel or block a slot.
// Booked slots are not writable through this method.
func (r *SlotRepository) UpdateStatus(ctx context.Context, tx db.DBTX, slotID uuid.UUID, status slot.Status) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE appointment_slots
		SET status = $2,
		    updated_at = now()
		WHERE id = $1
		  AND status <> 'booked'
	`, slotID, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update slot status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete refuses to remove a booked slot; the guard lives in the statement
// so the check and the delete are one atomic step.
func (r *SlotRepository) Delete(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM appointment_slots
		WHERE id = $1
		  AND status <> 'booked'
	`, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanSlot(row pgx.Row) (*slot.Slot, error) {
	var (
		id, availabilityID, providerID uuid.UUID
		start, end                     time.Time
		status                         string
		patientID                      *uuid.UUID
		bookingReference               *string
		appointmentType                string
		createdAt, updatedAt           time.Time
	)

	err := row.Scan(
		&id, &availabilityID, &providerID, &start, &end,
		&status, &patientID, &bookingReference, &appointmentType,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}

	statusVO, err := slot.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot status is invalid", err)
	}
	typeVO, err := availability.NewAppointmentType(appointmentType)
	if err != nil {
		return nil, infra.WrapRepoErr("stored slot appointment type is invalid", err)
	}

	return slot.ReconstructSlot(
		id, availabilityID, providerID, start, end,
		statusVO, patientID, bookingReference, typeVO,
		createdAt, updatedAt,
	), nil
}
