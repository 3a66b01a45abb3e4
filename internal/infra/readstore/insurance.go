package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type InsuranceViewQueries interface {
	GetInsurancePlan(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InsurancePlans, error)
	ListInsurancePlans(ctx context.Context, db sqlc.DBTX) ([]sqlc.InsurancePlans, error)
	ListActiveInsurancePlans(ctx context.Context, db sqlc.DBTX) ([]sqlc.InsurancePlans, error)
	ListRentalInsurances(ctx context.Context, db sqlc.DBTX, rentalID uuid.UUID) ([]sqlc.ListRentalInsurancesRow, error)
}

type InsuranceReadStore struct {
	queries InsuranceViewQueries
	db      sqlc.DBTX
}

func NewInsuranceReadStore(queries *sqlc.Queries, db sqlc.DBTX) *InsuranceReadStore {
	return &InsuranceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InsuranceReadStore) FindPlanByID(ctx context.Context, id uuid.UUID) (*queries.InsurancePlanView, error) {
	row, err := r.queries.GetInsurancePlan(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("insurance plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find insurance plan by ID", err)
	}
	return rowToInsurancePlanView(row), nil
}

func (r *InsuranceReadStore) ListPlans(ctx context.Context) ([]*queries.InsurancePlanView, error) {
	rows, err := r.queries.ListInsurancePlans(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list insurance plans", err)
	}
	return rowsToInsurancePlanViews(rows), nil
}

func (r *InsuranceReadStore) ListActivePlans(ctx context.Context) ([]*queries.InsurancePlanView, error) {
	rows, err := r.queries.ListActiveInsurancePlans(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active insurance plans", err)
	}
	return rowsToInsurancePlanViews(rows), nil
}

func (r *InsuranceReadStore) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*queries.RentalInsuranceView, error) {
	rows, err := r.queries.ListRentalInsurances(ctx, r.db, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rental insurances", err)
	}
	result := make([]*queries.RentalInsuranceView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RentalInsuranceView{
			RentalID:     row.RentalID,
			PlanID:       row.PlanID,
			PlanName:     row.PlanName,
			StartDate:    pgconv.DateFromPgtype(row.StartDate),
			EndDate:      pgconv.DateFromPgtype(row.EndDate),
			PremiumCents: row.PremiumCents,
		}
	}
	return result, nil
}

func rowsToInsurancePlanViews(rows []sqlc.InsurancePlans) []*queries.InsurancePlanView {
	result := make([]*queries.InsurancePlanView, len(rows))
	for i, row := range rows {
		result[i] = rowToInsurancePlanView(row)
	}
	return result
}

func rowToInsurancePlanView(row sqlc.InsurancePlans) *queries.InsurancePlanView {
	return &queries.InsurancePlanView{
		ID:                  row.ID,
		Name:                row.Name,
		Description:         pgconv.StringPtrFromPgtype(row.Description),
		DailyCostCents:      row.DailyCostCents,
		CoverageAmountCents: row.CoverageAmountCents,
		DeductibleCents:     row.DeductibleCents,
		IsActive:            row.IsActive,
	}
}
