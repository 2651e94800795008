package response

import (
	"time"

	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID               uuid.UUID  `json:"id"`
	AvailabilityID   uuid.UUID  `json:"availabilityId"`
	ProviderID       uuid.UUID  `json:"providerId"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	Status           string     `json:"status"`
	PatientID        *uuid.UUID `json:"patientId,omitempty"`
	BookingReference *string    `json:"bookingReference,omitempty"`
	AppointmentType  string     `json:"appointmentType"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
	Count int             `json:"count"`
}

type BookedPageResponse struct {
	Appointments []*SlotResponse `json:"appointments"`
	Page         int             `json:"page"`
	Size         int             `json:"size"`
	TotalCount   int64           `json:"totalCount"`
}

type CreateAvailabilityResponse struct {
	AvailabilityID             uuid.UUID `json:"availabilityId"`
	SlotsCreated               int       `json:"slotsCreated"`
	DateRangeStart             string    `json:"dateRangeStart"`
	DateRangeEnd               string    `json:"dateRangeEnd"`
	TotalAppointmentsAvailable int       `json:"totalAppointmentsAvailable"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:               v.ID,
		AvailabilityID:   v.AvailabilityID,
		ProviderID:       v.ProviderID,
		StartTime:        v.StartTime,
		EndTime:          v.EndTime,
		Status:           v.Status,
		PatientID:        v.PatientID,
		BookingReference: v.BookingReference,
		AppointmentType:  v.AppointmentType,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) *SlotListResponse {
	slots := make([]*SlotResponse, len(views))
	for i, v := range views {
		slots[i] = FromSlotView(v)
	}
	return &SlotListResponse{Slots: slots, Count: len(slots)}
}

func FromBookedPage(p *queries.BookedPage) *BookedPageResponse {
	items := make([]*SlotResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromSlotView(v)
	}
	return &BookedPageResponse{
		Appointments: items,
		Page:         p.Page,
		Size:         p.Size,
		TotalCount:   p.TotalCount,
	}
}

func FromCreateAvailabilityResult(r *commands.CreateAvailabilityResult) *CreateAvailabilityResponse {
	return &CreateAvailabilityResponse{
		AvailabilityID:             r.AvailabilityID,
		SlotsCreated:               r.SlotsCreated,
		DateRangeStart:             r.DateRange.Start,
		DateRangeEnd:               r.DateRange.End,
		TotalAppointmentsAvailable: r.TotalAppointmentsAvailable,
	}
}
