package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*ReservationView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*ReservationView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) GetDetailByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error) {
	return q.repo.FindDetailByID(ctx, id)
}

func (q *reservationQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *reservationQueriesImpl) ListActive(ctx context.Context, limit, offset int32) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.ListActive(ctx, limit, offset)
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.ListByCustomer(ctx, customerID)
}
