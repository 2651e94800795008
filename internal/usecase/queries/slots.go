package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ProviderCalendar(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*SlotView, error)
	SearchAvailable(ctx context.Context, providerID *uuid.UUID, from, to time.Time) ([]*SlotView, error)
	BookedByProvider(ctx context.Context, providerID uuid.UUID, page, size int) (*BookedPage, error)
	BookedByPatient(ctx context.Context, patientID uuid.UUID, page, size int) (*BookedPage, error)
}

type SlotViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindProviderCalendar(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*SlotView, error)
	SearchAvailable(ctx context.Context, providerID *uuid.UUID, from, to time.Time) ([]*SlotView, error)
	FindBookedByProvider(ctx context.Context, providerID uuid.UUID, page, size int) (*BookedPage, error)
	FindBookedByPatient(ctx context.Context, patientID uuid.UUID, page, size int) (*BookedPage, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
}

func NewSlotQueries(repo SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *slotQueriesImpl) ProviderCalendar(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*SlotView, error) {
	return q.repo.FindProviderCalendar(ctx, providerID, from, to)
}

func (q *slotQueriesImpl) SearchAvailable(ctx context.Context, providerID *uuid.UUID, from, to time.Time) ([]*SlotView, error) {
	return q.repo.SearchAvailable(ctx, providerID, from, to)
}

func (q *slotQueriesImpl) BookedByProvider(ctx context.Context, providerID uuid.UUID, page, size int) (*BookedPage, error) {
	return q.repo.FindBookedByProvider(ctx, providerID, page, size)
}

func (q *slotQueriesImpl) BookedByPatient(ctx context.Context, patientID uuid.UUID, page, size int) (*BookedPage, error) {
	return q.repo.FindBookedByPatient(ctx, patientID, page, size)
}
