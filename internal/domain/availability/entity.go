package availability

import (
	"time"

	"github.com/google/uuid"
)

// Availability is one provider-declared window of bookable time. It is
// created once by the orchestrator and never mutated afterwards; slot-level
// state lives on the generated slots.
type Availability struct {
	id            uuid.UUID
	providerID    uuid.UUID
	date          Date
	window        TimeWindow
	timezone      string
	recurrence    RecurrenceRule
	slotDuration  SlotDuration
	breakDuration BreakDuration
	appointment   AppointmentType
	location      Location
	pricing       *Pricing
	notes         Notes
	requirements  []string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAvailability validates the full request before anything is persisted.
// The zone resolver is passed in so an unresolvable timezone is caught here,
// alongside the window and duration checks.
func NewAvailability(
	zones ZoneResolver,
	providerID uuid.UUID,
	date Date,
	window TimeWindow,
	timezone string,
	recurrence RecurrenceRule,
	slotDuration SlotDuration,
	breakDuration BreakDuration,
	appointment AppointmentType,
	location Location,
	pricing *Pricing,
	notes Notes,
	requirements []string,
) (*Availability, error) {
	if _, err := zones.Resolve(timezone); err != nil {
		return nil, err
	}
	if !slotDuration.Divides(window) {
		return nil, ErrInvalidSlotDuration
	}

	return &Availability{
		id:            uuid.New(),
		providerID:    providerID,
		date:          date,
		window:        window,
		timezone:      timezone,
		recurrence:    recurrence,
		slotDuration:  slotDuration,
		breakDuration: breakDuration,
		appointment:   appointment,
		location:      location,
		pricing:       pricing,
		notes:         notes,
		requirements:  requirements,
	}, nil
}

func ReconstructAvailability(
	id, providerID uuid.UUID,
	date Date,
	window TimeWindow,
	timezone string,
	recurrence RecurrenceRule,
	slotDuration SlotDuration,
	breakDuration BreakDuration,
	appointment AppointmentType,
	location Location,
	pricing *Pricing,
	notes Notes,
	requirements []string,
	createdAt, updatedAt time.Time,
) *Availability {
	return &Availability{
		id:            id,
		providerID:    providerID,
		date:          date,
		window:        window,
		timezone:      timezone,
		recurrence:    recurrence,
		slotDuration:  slotDuration,
		breakDuration: breakDuration,
		appointment:   appointment,
		location:      location,
		pricing:       pricing,
		notes:         notes,
		requirements:  requirements,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Dates expands the recurrence rule into the dates slots are generated for.
func (a *Availability) Dates() []Date {
	return a.recurrence.Expand(a.date)
}

func (a *Availability) ID() uuid.UUID                 { return a.id }
func (a *Availability) ProviderID() uuid.UUID         { return a.providerID }
func (a *Availability) Date() Date                    { return a.date }
func (a *Availability) Window() TimeWindow            { return a.window }
func (a *Availability) Timezone() string              { return a.timezone }
func (a *Availability) Recurrence() RecurrenceRule    { return a.recurrence }
func (a *Availability) SlotDuration() SlotDuration    { return a.slotDuration }
func (a *Availability) BreakDuration() BreakDuration  { return a.breakDuration }
func (a *Availability) AppointmentType() AppointmentType { return a.appointment }
func (a *Availability) Location() Location            { return a.location }
func (a *Availability) Pricing() *Pricing             { return a.pricing }
func (a *Availability) Notes() Notes                  { return a.notes }
func (a *Availability) Requirements() []string        { return a.requirements }
func (a *Availability) CreatedAt() time.Time          { return a.createdAt }
func (a *Availability) UpdatedAt() time.Time          { return a.updatedAt }
