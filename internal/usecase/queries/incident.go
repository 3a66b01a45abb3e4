package queries

import (
	"context"

	"github.com/google/uuid"
)

type IncidentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*IncidentView, error)
	List(ctx context.Context, limit, offset int32) ([]*IncidentView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*IncidentView, error)
	ListOpen(ctx context.Context) ([]*IncidentView, error)
}

type IncidentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IncidentView, error)
	List(ctx context.Context, limit, offset int32) ([]*IncidentView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*IncidentView, error)
	ListOpen(ctx context.Context) ([]*IncidentView, error)
}

type incidentQueriesImpl struct {
	repo IncidentViewRepo
}

func NewIncidentQueries(repo IncidentViewRepo) IncidentQueries {
	return &incidentQueriesImpl{repo: repo}
}

func (q *incidentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*IncidentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *incidentQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*IncidentView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *incidentQueriesImpl) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*IncidentView, error) {
	return q.repo.ListByRental(ctx, rentalID)
}

func (q *incidentQueriesImpl) ListOpen(ctx context.Context) ([]*IncidentView, error) {
	return q.repo.ListOpen(ctx)
}
