package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*PaymentView, error)
	ListFailed(ctx context.Context) ([]*PaymentView, error)
	Report(ctx context.Context, from, to time.Time) (*PaymentsReportView, error)
}

type PaymentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*PaymentView, error)
	ListFailed(ctx context.Context) ([]*PaymentView, error)
	ReportBetween(ctx context.Context, from, to time.Time) (*PaymentsReportView, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *paymentQueriesImpl) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*PaymentView, error) {
	return q.repo.ListByRental(ctx, rentalID)
}

func (q *paymentQueriesImpl) ListFailed(ctx context.Context) ([]*PaymentView, error) {
	return q.repo.ListFailed(ctx)
}

func (q *paymentQueriesImpl) Report(ctx context.Context, from, to time.Time) (*PaymentsReportView, error) {
	if from.After(to) {
		return nil, ErrInvalidReportRange
	}
	return q.repo.ReportBetween(ctx, from, to)
}
