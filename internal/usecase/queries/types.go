package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID               uuid.UUID  `json:"id"`
	AvailabilityID   uuid.UUID  `json:"availability_id"`
	ProviderID       uuid.UUID  `json:"provider_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Status           string     `json:"status"`
	PatientID        *uuid.UUID `json:"patient_id,omitempty"`
	BookingReference *string    `json:"booking_reference,omitempty"`
	AppointmentType  string     `json:"appointment_type"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BookedPage is one page of booked appointments, newest start time first.
type BookedPage struct {
	Items      []*SlotView `json:"items"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalCount int64       `json:"total_count"`
}
