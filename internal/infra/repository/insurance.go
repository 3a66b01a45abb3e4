package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type InsuranceRepository struct {
	queries *sqlc.Queries
}

func NewInsuranceRepository(queries *sqlc.Queries) *InsuranceRepository {
	return &InsuranceRepository{queries: queries}
}

func (r *InsuranceRepository) CreatePlan(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateInsurancePlanParams) (uuid.UUID, error) {
	id, err := r.queries.CreateInsurancePlan(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create insurance plan", err)
	}
	return id, nil
}

func (r *InsuranceRepository) Attach(ctx context.Context, tx sqlc.DBTX, arg sqlc.AttachRentalInsuranceParams) error {
	if err := r.queries.AttachRentalInsurance(ctx, tx, arg); err != nil {
		return infra.WrapRepoErr("failed to attach insurance to rental", err)
	}
	return nil
}
