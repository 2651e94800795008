package builder

import (
	"healthsched/internal/domain/availability"

	"github.com/google/uuid"
)

// AvailabilityBuilder builds a valid availability by default; tests mutate
// single fields to probe each validation rule.
type AvailabilityBuilder struct {
	providerID    uuid.UUID
	date          string
	startTime     string
	endTime       string
	timezone      string
	isRecurring   bool
	pattern       string
	endDate       string
	slotMinutes   int
	breakMinutes  int
	appointment   string
	notes         string
	requirements  []string
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		providerID:   uuid.New(),
		date:         "2025-06-02",
		startTime:    "09:00",
		endTime:      "17:00",
		timezone:     "UTC",
		slotMinutes:  30,
		breakMinutes: 0,
		appointment:  "consultation",
	}
}

func (b *AvailabilityBuilder) WithProviderID(id uuid.UUID) *AvailabilityBuilder {
	b.providerID = id
	return b
}

func (b *AvailabilityBuilder) WithDate(date string) *AvailabilityBuilder {
	b.date = date
	return b
}

func (b *AvailabilityBuilder) WithWindow(start, end string) *AvailabilityBuilder {
	b.startTime = start
	b.endTime = end
	return b
}

func (b *AvailabilityBuilder) WithTimezone(tz string) *AvailabilityBuilder {
	b.timezone = tz
	return b
}

func (b *AvailabilityBuilder) WithSlotMinutes(minutes int) *AvailabilityBuilder {
	b.slotMinutes = minutes
	return b
}

func (b *AvailabilityBuilder) WithBreakMinutes(minutes int) *AvailabilityBuilder {
	b.breakMinutes = minutes
	return b
}

func (b *AvailabilityBuilder) Recurring(pattern, endDate string) *AvailabilityBuilder {
	b.isRecurring = true
	b.pattern = pattern
	b.endDate = endDate
	return b
}

func (b *AvailabilityBuilder) WithAppointmentType(t string) *AvailabilityBuilder {
	b.appointment = t
	return b
}

func (b *AvailabilityBuilder) WithNotes(notes string) *AvailabilityBuilder {
	b.notes = notes
	return b
}

func (b *AvailabilityBuilder) Build() (*availability.Availability, error) {
	date, err := availability.ParseDate(b.date)
	if err != nil {
		return nil, err
	}
	start, err := availability.ParseTimeOfDay(b.startTime)
	if err != nil {
		return nil, err
	}
	end, err := availability.ParseTimeOfDay(b.endTime)
	if err != nil {
		return nil, err
	}
	window, err := availability.NewTimeWindow(start, end)
	if err != nil {
		return nil, err
	}
	slotDuration, err := availability.NewSlotDuration(b.slotMinutes)
	if err != nil {
		return nil, err
	}
	breakDuration, err := availability.NewBreakDuration(b.breakMinutes)
	if err != nil {
		return nil, err
	}
	pattern, err := availability.NewRecurrencePattern(b.pattern)
	if err != nil {
		return nil, err
	}
	var endDate availability.Date
	if b.endDate != "" {
		endDate, err = availability.ParseDate(b.endDate)
		if err != nil {
			return nil, err
		}
	}
	recurrence, err := availability.NewRecurrenceRule(b.isRecurring, pattern, endDate)
	if err != nil {
		return nil, err
	}
	appointment, err := availability.NewAppointmentType(b.appointment)
	if err != nil {
		return nil, err
	}
	notes, err := availability.NewNotes(b.notes)
	if err != nil {
		return nil, err
	}

	return availability.NewAvailability(
		availability.NewSystemZoneResolver(),
		b.providerID,
		date,
		window,
		b.timezone,
		recurrence,
		slotDuration,
		breakDuration,
		appointment,
		availability.Location{Type: "clinic", Address: "1 Main St"},
		nil,
		notes,
		b.requirements,
	)
}
