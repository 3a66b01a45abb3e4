package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type MaintenanceRepository struct {
	queries *sqlc.Queries
}

func NewMaintenanceRepository(queries *sqlc.Queries) *MaintenanceRepository {
	return &MaintenanceRepository{queries: queries}
}

func (r *MaintenanceRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateMaintenanceScheduleParams) (uuid.UUID, error) {
	id, err := r.queries.CreateMaintenanceSchedule(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create maintenance schedule", err)
	}
	return id, nil
}
