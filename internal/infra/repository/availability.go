package repository

import (
	"context"

	"healthsched/internal/domain/availability"
	"healthsched/internal/infra"
	"healthsched/internal/infra/db"
)

type AvailabilityRepository struct {
	db db.DBTX
}

func NewAvailabilityRepository(pool db.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: pool}
}

func (r *AvailabilityRepository) Create(ctx context.Context, tx db.DBTX, a *availability.Availability) error {
	var recurrenceEnd *string
	if a.Recurrence().IsRecurring() && !a.Recurrence().EndDate().IsZero() {
		s := a.Recurrence().EndDate().String()
		recurrenceEnd = &s
	}

	var baseFee *int64
	var insuranceAccepted *bool
	var currency *string
	if p := a.Pricing(); p != nil {
		baseFee = p.BaseFeeCents
		insuranceAccepted = p.InsuranceAccepted
		currency = p.Currency
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO availabilities (
			id, provider_id, date, start_time, end_time, timezone,
			is_recurring, recurrence_pattern, recurrence_end_date,
			slot_duration_minutes, break_duration_minutes,
			appointment_type, location_type, location_address, location_room,
			base_fee_cents, insurance_accepted, currency,
			notes, special_requirements, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now(), now())
	`,
		a.ID(), a.ProviderID(), a.Date().String(),
		a.Window().Start().String(), a.Window().End().String(), a.Timezone(),
		a.Recurrence().IsRecurring(), a.Recurrence().Pattern().String(), recurrenceEnd,
		a.SlotDuration().Minutes(), a.BreakDuration().Minutes(),
		a.AppointmentType().String(),
		a.Location().Type, a.Location().Address, a.Location().RoomNumber,
		baseFee, insuranceAccepted, currency,
		a.Notes().String(), a.Requirements(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create availability", err)
	}
	return nil
}
