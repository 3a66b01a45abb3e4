package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type IncidentRepository struct {
	queries *sqlc.Queries
}

func NewIncidentRepository(queries *sqlc.Queries) *IncidentRepository {
	return &IncidentRepository{queries: queries}
}

func (r *IncidentRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateIncidentReportParams) (uuid.UUID, error) {
	id, err := r.queries.CreateIncidentReport(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create incident report", err)
	}
	return id, nil
}
