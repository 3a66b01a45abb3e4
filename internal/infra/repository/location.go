package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LocationRepository struct {
	queries *sqlc.Queries
}

func NewLocationRepository(queries *sqlc.Queries) *LocationRepository {
	return &LocationRepository{queries: queries}
}

func (r *LocationRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateLocationParams) (uuid.UUID, error) {
	id, err := r.queries.CreateLocation(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create location", err)
	}
	return id, nil
}
