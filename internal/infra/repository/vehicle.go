package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	queries *sqlc.Queries
}

func NewVehicleRepository(queries *sqlc.Queries) *VehicleRepository {
	return &VehicleRepository{queries: queries}
}

func (r *VehicleRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateVehicleParams) (uuid.UUID, error) {
	id, err := r.queries.CreateVehicle(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}

func (r *VehicleRepository) Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateVehicleParams) error {
	affected, err := r.queries.UpdateVehicle(ctx, tx, arg)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, available bool) error {
	affected, err := r.queries.SetVehicleAvailability(ctx, tx, sqlc.SetVehicleAvailabilityParams{
		ID:           id,
		Availability: available,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set vehicle availability", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.ClaimVehicle(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to claim vehicle", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle unavailable", nil, infra.KindConflict)
	}
	return nil
}

func (r *VehicleRepository) Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, mileageEnd *int32) error {
	affected, err := r.queries.ReleaseVehicle(ctx, tx, sqlc.ReleaseVehicleParams{
		ID:      id,
		Mileage: pgconv.Int32PtrToPgtype(mileageEnd),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release vehicle", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
