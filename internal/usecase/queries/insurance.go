package queries

import (
	"context"

	"github.com/google/uuid"
)

type InsuranceQueries interface {
	GetPlanByID(ctx context.Context, id uuid.UUID) (*InsurancePlanView, error)
	ListPlans(ctx context.Context) ([]*InsurancePlanView, error)
	ListActivePlans(ctx context.Context) ([]*InsurancePlanView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*RentalInsuranceView, error)
}

type InsuranceViewRepo interface {
	FindPlanByID(ctx context.Context, id uuid.UUID) (*InsurancePlanView, error)
	ListPlans(ctx context.Context) ([]*InsurancePlanView, error)
	ListActivePlans(ctx context.Context) ([]*InsurancePlanView, error)
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*RentalInsuranceView, error)
}

type insuranceQueriesImpl struct {
	repo InsuranceViewRepo
}

func NewInsuranceQueries(repo InsuranceViewRepo) InsuranceQueries {
	return &insuranceQueriesImpl{repo: repo}
}

func (q *insuranceQueriesImpl) GetPlanByID(ctx context.Context, id uuid.UUID) (*InsurancePlanView, error) {
	return q.repo.FindPlanByID(ctx, id)
}

func (q *insuranceQueriesImpl) ListPlans(ctx context.Context) ([]*InsurancePlanView, error) {
	return q.repo.ListPlans(ctx)
}

func (q *insuranceQueriesImpl) ListActivePlans(ctx context.Context) ([]*InsurancePlanView, error) {
	return q.repo.ListActivePlans(ctx)
}

func (q *insuranceQueriesImpl) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*RentalInsuranceView, error) {
	return q.repo.ListByRental(ctx, rentalID)
}
