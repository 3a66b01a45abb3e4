package commands

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateLicensePlate = errs.New("license plate already registered")
	ErrLocationNotFound      = errs.New("location not found")
)

type VehicleInput struct {
	Make            string
	Model           string
	LicensePlate    string
	Year            int32
	DailyRateCents  int64
	Mileage         int32
	FuelType        string
	Transmission    string
	SeatingCapacity int32
	LocationID      *uuid.UUID
}

type VehicleCommands interface {
	CreateVehicle(ctx context.Context, input VehicleInput) (uuid.UUID, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, input VehicleInput) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type vehicleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewVehicleUseCase(uow shared.UnitOfWork) VehicleCommands {
	return &vehicleUseCaseImpl{uow: uow}
}

func (uc *vehicleUseCaseImpl) CreateVehicle(ctx context.Context, input VehicleInput) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Vehicles().Create(ctx, tx.DB(), sqlc.CreateVehicleParams{
			Make:            input.Make,
			Model:           input.Model,
			LicensePlate:    input.LicensePlate,
			Year:            input.Year,
			DailyRateCents:  input.DailyRateCents,
			Mileage:         input.Mileage,
			FuelType:        input.FuelType,
			Transmission:    input.Transmission,
			SeatingCapacity: input.SeatingCapacity,
			LocationID:      pgconv.UUIDPtrToPgtype(input.LocationID),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateLicensePlate)
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrLocationNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *vehicleUseCaseImpl) UpdateVehicle(ctx context.Context, id uuid.UUID, input VehicleInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Vehicles().Update(ctx, tx.DB(), sqlc.UpdateVehicleParams{
			ID:              id,
			Make:            input.Make,
			Model:           input.Model,
			LicensePlate:    input.LicensePlate,
			Year:            input.Year,
			DailyRateCents:  input.DailyRateCents,
			Mileage:         input.Mileage,
			FuelType:        input.FuelType,
			Transmission:    input.Transmission,
			SeatingCapacity: input.SeatingCapacity,
			LocationID:      pgconv.UUIDPtrToPgtype(input.LocationID),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateLicensePlate)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *vehicleUseCaseImpl) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Vehicles().SetAvailability(ctx, tx.DB(), id, available)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
