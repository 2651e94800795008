package request

import (
	"healthsched/internal/domain/availability"
	"healthsched/internal/usecase/shared"

	"github.com/google/uuid"
)

type LocationRequest struct {
	Type       string  `json:"type" binding:"required"`
	Address    string  `json:"address" binding:"required"`
	RoomNumber *string `json:"room_number,omitempty"`
}

type PricingRequest struct {
	BaseFeeCents      *int64  `json:"base_fee_cents,omitempty"`
	InsuranceAccepted *bool   `json:"insurance_accepted,omitempty"`
	Currency          *string `json:"currency,omitempty"`
}

type CreateAvailabilityRequest struct {
	Date                 string          `json:"date" binding:"required"`
	StartTime            string          `json:"start_time" binding:"required"`
	EndTime              string          `json:"end_time" binding:"required"`
	Timezone             string          `json:"timezone" binding:"required"`
	SlotDurationMinutes  int             `json:"slot_duration_minutes" binding:"required"`
	BreakDurationMinutes int             `json:"break_duration_minutes"`
	IsRecurring          bool            `json:"is_recurring"`
	RecurrencePattern    string          `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate    string          `json:"recurrence_end_date,omitempty"`
	AppointmentType      string          `json:"appointment_type,omitempty"`
	Location             LocationRequest `json:"location" binding:"required"`
	Pricing              *PricingRequest `json:"pricing,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	SpecialRequirements  []string        `json:"special_requirements,omitempty"`
}

// ToDomain validates field by field, collecting every failure, then builds
// the availability through the domain constructor which enforces the
// cross-field rules (window divisibility, resolvable timezone).
func (r CreateAvailabilityRequest) ToDomain(
	zones availability.ZoneResolver,
	providerID uuid.UUID,
) (*availability.Availability, error) {
	fieldErrs := shared.NewFieldErrors()

	date, err := availability.ParseDate(r.Date)
	if err != nil {
		fieldErrs.Add("date", err.Error())
	}
	start, err := availability.ParseTimeOfDay(r.StartTime)
	if err != nil {
		fieldErrs.Add("start_time", err.Error())
	}
	end, err := availability.ParseTimeOfDay(r.EndTime)
	if err != nil {
		fieldErrs.Add("end_time", err.Error())
	}

	var window availability.TimeWindow
	if _, ok := fieldErrs["start_time"]; !ok {
		if _, ok := fieldErrs["end_time"]; !ok {
			window, err = availability.NewTimeWindow(start, end)
			if err != nil {
				fieldErrs.Add("end_time", err.Error())
			}
		}
	}

	slotDuration, err := availability.NewSlotDuration(r.SlotDurationMinutes)
	if err != nil {
		fieldErrs.Add("slot_duration_minutes", err.Error())
	}
	breakDuration, err := availability.NewBreakDuration(r.BreakDurationMinutes)
	if err != nil {
		fieldErrs.Add("break_duration_minutes", err.Error())
	}

	pattern, err := availability.NewRecurrencePattern(r.RecurrencePattern)
	if err != nil {
		fieldErrs.Add("recurrence_pattern", err.Error())
	}
	var endDate availability.Date
	if r.RecurrenceEndDate != "" {
		endDate, err = availability.ParseDate(r.RecurrenceEndDate)
		if err != nil {
			fieldErrs.Add("recurrence_end_date", err.Error())
		}
	}
	recurrence, err := availability.NewRecurrenceRule(r.IsRecurring, pattern, endDate)
	if err != nil {
		fieldErrs.Add("recurrence_pattern", err.Error())
	}

	appointmentType, err := availability.NewAppointmentType(r.AppointmentType)
	if err != nil {
		fieldErrs.Add("appointment_type", err.Error())
	}
	notes, err := availability.NewNotes(r.Notes)
	if err != nil {
		fieldErrs.Add("notes", err.Error())
	}

	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	location := availability.Location{
		Type:       r.Location.Type,
		Address:    r.Location.Address,
		RoomNumber: r.Location.RoomNumber,
	}
	var pricing *availability.Pricing
	if r.Pricing != nil {
		pricing = &availability.Pricing{
			BaseFeeCents:      r.Pricing.BaseFeeCents,
			InsuranceAccepted: r.Pricing.InsuranceAccepted,
			Currency:          r.Pricing.Currency,
		}
	}

	return availability.NewAvailability(
		zones,
		providerID,
		date,
		window,
		r.Timezone,
		recurrence,
		slotDuration,
		breakDuration,
		appointmentType,
		location,
		pricing,
		notes,
		r.SpecialRequirements,
	)
}
