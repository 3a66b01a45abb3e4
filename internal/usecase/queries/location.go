package queries

import (
	"context"

	"github.com/google/uuid"
)

type LocationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*LocationDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*LocationView, error)
	ListByCity(ctx context.Context, city string) ([]*LocationView, error)
}

type LocationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*LocationDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*LocationView, error)
	ListByCity(ctx context.Context, city string) ([]*LocationView, error)
}

type locationQueriesImpl struct {
	repo LocationViewRepo
}

func NewLocationQueries(repo LocationViewRepo) LocationQueries {
	return &locationQueriesImpl{repo: repo}
}

func (q *locationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *locationQueriesImpl) GetDetailByID(ctx context.Context, id uuid.UUID) (*LocationDetailView, error) {
	return q.repo.FindDetailByID(ctx, id)
}

func (q *locationQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*LocationView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *locationQueriesImpl) ListByCity(ctx context.Context, city string) ([]*LocationView, error) {
	return q.repo.ListByCity(ctx, city)
}
