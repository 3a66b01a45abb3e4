package queries

import (
	"context"
	"time"

	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidReportRange = errs.New("report range start is after end")

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*RentalDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*RentalView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*RentalView, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*RentalView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*RentalView, error)
	Filter(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
	RevenueReport(ctx context.Context, from, to time.Time) (*RevenueReportView, error)
}

type RentalViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*RentalDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*RentalView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*RentalView, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*RentalView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*RentalView, error)
	Filter(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type rentalQueriesImpl struct {
	repo RentalViewRepo
}

func NewRentalQueries(repo RentalViewRepo) RentalQueries {
	return &rentalQueriesImpl{repo: repo}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *rentalQueriesImpl) GetDetailByID(ctx context.Context, id uuid.UUID) (*RentalDetailView, error) {
	return q.repo.FindDetailByID(ctx, id)
}

func (q *rentalQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*RentalView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *rentalQueriesImpl) ListActive(ctx context.Context, limit, offset int32) ([]*RentalView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.ListActive(ctx, limit, offset)
}

func (q *rentalQueriesImpl) ListOverdue(ctx context.Context, now time.Time) ([]*RentalView, error) {
	return q.repo.ListOverdue(ctx, now)
}

func (q *rentalQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int32) ([]*RentalView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.ListByCustomer(ctx, customerID, limit, offset)
}

func (q *rentalQueriesImpl) Filter(ctx context.Context, filter RentalFilter) ([]*RentalView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return q.repo.Filter(ctx, filter)
}

// RevenueReport sums completed rentals whose start date falls inside the
// inclusive [from, to] range. An empty range yields a zero total.
func (q *rentalQueriesImpl) RevenueReport(ctx context.Context, from, to time.Time) (*RevenueReportView, error) {
	if from.After(to) {
		return nil, ErrInvalidReportRange
	}
	total, err := q.repo.RevenueBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &RevenueReportView{
		FromDate:          from,
		ToDate:            to,
		TotalRevenueCents: total,
	}, nil
}
