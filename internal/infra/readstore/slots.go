package readstore

import (
	"context"
	"errors"
	"time"

	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
	"healthsched/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error)
	FindProviderCalendar(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error)
	SearchAvailable(ctx context.Context, providerID *uuid.UUID, from, to time.Time) ([]*queries.SlotView, error)
	FindBookedByProvider(ctx context.Context, providerID uuid.UUID, page, size int) (*queries.BookedPage, error)
	FindBookedByPatient(ctx context.Context, patientID uuid.UUID, page, size int) (*queries.BookedPage, error)
}

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(pool db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: pool}
}

const slotViewSelect = `
	SELECT id, availability_id, provider_id, start_time, end_time,
	       status, patient_id, booking_reference, appointment_type,
	       created_at, updated_at
	FROM appointment_slots`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotViewSelect+` WHERE id = $1`, id)
	view, err := scanSlotView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

// FindProviderCalendar returns every slot of the provider intersecting the
// range, regardless of status; the calendar shows blocked and cancelled slots
// too.
func (r *SlotReadStore) FindProviderCalendar(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, slotViewSelect+`
		WHERE provider_id = $1
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query provider calendar", err)
	}
	return collectSlotViews(rows)
}

// SearchAvailable is the patient-facing search; only slots that can actually
// be booked come back. providerID narrows the search when non-nil.
func (r *SlotReadStore) SearchAvailable(ctx context.Context, providerID *uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, slotViewSelect+`
		WHERE status = 'available'
		  AND start_time < $2
		  AND end_time > $1
		  AND ($3::uuid IS NULL OR provider_id = $3)
		ORDER BY start_time
	`, from, to, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available slots", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindBookedByProvider(ctx context.Context, providerID uuid.UUID, page, size int) (*queries.BookedPage, error) {
	return r.findBooked(ctx, "provider_id", providerID, page, size)
}

func (r *SlotReadStore) FindBookedByPatient(ctx context.Context, patientID uuid.UUID, page, size int) (*queries.BookedPage, error) {
	return r.findBooked(ctx, "patient_id", patientID, page, size)
}

func (r *SlotReadStore) findBooked(ctx context.Context, column string, id uuid.UUID, page, size int) (*queries.BookedPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM appointment_slots WHERE `+column+` = $1 AND status = 'booked'`,
		id,
	).Scan(&total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count booked appointments", err)
	}

	rows, err := r.db.Query(ctx, slotViewSelect+`
		WHERE `+column+` = $1
		  AND status = 'booked'
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`, id, size, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked appointments", err)
	}
	items, err := collectSlotViews(rows)
	if err != nil {
		return nil, err
	}

	return &queries.BookedPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalCount: total,
	}, nil
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	defer rows.Close()

	result := make([]*queries.SlotView, 0)
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(
		&v.ID, &v.AvailabilityID, &v.ProviderID, &v.StartTime, &v.EndTime,
		&v.Status, &v.PatientID, &v.BookingReference, &v.AppointmentType,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
