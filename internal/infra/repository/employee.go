package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type EmployeeRepository struct {
	queries *sqlc.Queries
}

func NewEmployeeRepository(queries *sqlc.Queries) *EmployeeRepository {
	return &EmployeeRepository{queries: queries}
}

func (r *EmployeeRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateEmployeeParams) (uuid.UUID, error) {
	id, err := r.queries.CreateEmployee(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create employee", err)
	}
	return id, nil
}
