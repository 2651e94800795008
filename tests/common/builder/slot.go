package builder

import (
	"time"

	"healthsched/internal/domain/availability"
	"healthsched/internal/domain/slot"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	id               uuid.UUID
	availabilityID   uuid.UUID
	providerID       uuid.UUID
	start            time.Time
	end              time.Time
	status           slot.Status
	patientID        *uuid.UUID
	bookingReference *string
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &SlotBuilder{
		id:             uuid.New(),
		availabilityID: uuid.New(),
		providerID:     uuid.New(),
		start:          start,
		end:            start.Add(30 * time.Minute),
		status:         slot.StatusAvailable,
	}
}

func (b *SlotBuilder) WithProviderID(id uuid.UUID) *SlotBuilder {
	b.providerID = id
	return b
}

func (b *SlotBuilder) WithInterval(start, end time.Time) *SlotBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *SlotBuilder) WithStatus(status slot.Status) *SlotBuilder {
	b.status = status
	return b
}

func (b *SlotBuilder) Booked(patientID uuid.UUID, reference string) *SlotBuilder {
	b.status = slot.StatusBooked
	b.patientID = &patientID
	b.bookingReference = &reference
	return b
}

func (b *SlotBuilder) Build() *slot.Slot {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return slot.ReconstructSlot(
		b.id, b.availabilityID, b.providerID,
		b.start, b.end,
		b.status, b.patientID, b.bookingReference,
		availability.TypeConsultation,
		now, now,
	)
}
