package slot

import (
	"errors"
	"time"

	"healthsched/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid slot status")
	ErrInvalidInterval = errors.New("slot start must precede slot end")
	ErrNotAvailable    = errors.New("slot is not available")
	ErrDeleteBooked    = errors.New("cannot delete a booked slot")
)

// Slot is one bookable unit of time derived from an availability. Start and
// end are absolute instants so cross-timezone comparison is unambiguous.
//
// Invariants: patientID is set iff status is booked; bookingReference is
// assigned exactly once, at booking time.
type Slot struct {
	id               uuid.UUID
	availabilityID   uuid.UUID
	providerID       uuid.UUID
	start            time.Time
	end              time.Time
	status           Status
	patientID        *uuid.UUID
	bookingReference *string
	appointmentType  availability.AppointmentType
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSlot(
	availabilityID, providerID uuid.UUID,
	times availability.SlotTime,
	appointmentType availability.AppointmentType,
) (*Slot, error) {
	if !times.Start.Before(times.End) {
		return nil, ErrInvalidInterval
	}
	return &Slot{
		id:              uuid.New(),
		availabilityID:  availabilityID,
		providerID:      providerID,
		start:           times.Start,
		end:             times.End,
		status:          StatusAvailable,
		appointmentType: appointmentType,
	}, nil
}

func ReconstructSlot(
	id, availabilityID, providerID uuid.UUID,
	start, end time.Time,
	status Status,
	patientID *uuid.UUID,
	bookingReference *string,
	appointmentType availability.AppointmentType,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:               id,
		availabilityID:   availabilityID,
		providerID:       providerID,
		start:            start,
		end:              end,
		status:           status,
		patientID:        patientID,
		bookingReference: bookingReference,
		appointmentType:  appointmentType,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Book transitions an available slot to booked. Any other current status
// fails with ErrNotAvailable; callers cannot distinguish an already-booked
// slot from a cancelled or blocked one through this path.
func (s *Slot) Book(patientID uuid.UUID, reference string) error {
	if s.status != StatusAvailable {
		return ErrNotAvailable
	}
	s.status = StatusBooked
	s.patientID = &patientID
	s.bookingReference = &reference
	return nil
}

// Overlaps is the half-open interval test: [start, end) ranges that merely
// touch at a boundary do not overlap.
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.start.Before(end) && s.end.After(start)
}

// Conflicts reports whether a candidate interval collides with this slot,
// taking status into account: cancelled slots no longer claim their range.
func (s *Slot) Conflicts(start, end time.Time) bool {
	return s.status.Blocking() && s.Overlaps(start, end)
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) IsBooked() bool {
	return s.status == StatusBooked
}

// Deletable guards slot deletion; booked slots must be cancelled through the
// booking flow first.
func (s *Slot) Deletable() error {
	if s.status == StatusBooked {
		return ErrDeleteBooked
	}
	return nil
}

func (s *Slot) ID() uuid.UUID                                 { return s.id }
func (s *Slot) AvailabilityID() uuid.UUID                     { return s.availabilityID }
func (s *Slot) ProviderID() uuid.UUID                         { return s.providerID }
func (s *Slot) Start() time.Time                              { return s.start }
func (s *Slot) End() time.Time                                { return s.end }
func (s *Slot) Status() Status                                { return s.status }
func (s *Slot) PatientID() *uuid.UUID                         { return s.patientID }
func (s *Slot) BookingReference() *string                     { return s.bookingReference }
func (s *Slot) AppointmentType() availability.AppointmentType { return s.appointmentType }
func (s *Slot) CreatedAt() time.Time                          { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time                          { return s.updatedAt }

// ConflictsWithAny scans existing slots for a conflict with the candidate
// interval. Callers are expected to pass a bounded, provider-scoped set.
func ConflictsWithAny(existing []*Slot, start, end time.Time) bool {
	for _, s := range existing {
		if s.Conflicts(start, end) {
			return true
		}
	}
	return false
}
