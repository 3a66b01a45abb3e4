package repository

import (
	"context"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RentalRepository struct {
	queries *sqlc.Queries
}

func NewRentalRepository(queries *sqlc.Queries) *RentalRepository {
	return &RentalRepository{queries: queries}
}

func (r *RentalRepository) Create(ctx context.Context, tx sqlc.DBTX, ren *rental.Rental) (uuid.UUID, error) {
	fuelStart, err := pgconv.Float64PtrToNumeric(ren.FuelLevelStart())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid fuel level", err)
	}

	id, err := r.queries.CreateRental(ctx, tx, sqlc.CreateRentalParams{
		CustomerID:           ren.CustomerID(),
		VehicleID:            ren.VehicleID(),
		EmployeeID:           pgconv.UUIDPtrToPgtype(ren.EmployeeID()),
		PickupLocationID:     ren.PickupLocationID(),
		ReturnLocationID:     ren.ReturnLocationID(),
		StartsAt:             pgconv.TimeToPgtype(ren.Interval().Start()),
		EndsAt:               pgconv.TimeToPgtype(ren.Interval().End()),
		DailyRateCents:       ren.DailyRateCents(),
		TotalAmountCents:     ren.TotalAmountCents(),
		SecurityDepositCents: ren.SecurityDepositCents(),
		MileageStart:         pgconv.Int32PtrToPgtype(ren.MileageStart()),
		FuelLevelStart:       fuelStart,
		DiscountCents:        ren.DiscountCents(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return id, nil
}

func (r *RentalRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock rental", err)
	}
	return rowToRentalEntity(row)
}

func (r *RentalRepository) Complete(ctx context.Context, tx sqlc.DBTX, ren *rental.Rental) error {
	actualReturn := ren.ActualReturnAt()
	if actualReturn == nil {
		return infra.WrapRepoErr("rental has no return time", nil, infra.KindConflict)
	}
	fuelEnd, err := pgconv.Float64PtrToNumeric(ren.FuelLevelEnd())
	if err != nil {
		return infra.WrapRepoErr("invalid fuel level", err)
	}

	affected, err := r.queries.CompleteRental(ctx, tx, sqlc.CompleteRentalParams{
		ID:               ren.ID(),
		ActualReturnAt:   pgconv.TimeToPgtype(*actualReturn),
		MileageEnd:       pgconv.Int32PtrToPgtype(ren.MileageEnd()),
		FuelLevelEnd:     fuelEnd,
		LateFeeCents:     ren.LateFeeCents(),
		DamageFeeCents:   ren.DamageFeeCents(),
		TotalAmountCents: ren.TotalAmountCents(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete rental", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("rental not active", nil, infra.KindConflict)
	}
	return nil
}

func (r *RentalRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.CancelRental(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel rental", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("rental not cancellable", nil, infra.KindConflict)
	}
	return nil
}

func rowToRentalEntity(row sqlc.Rentals) (*rental.Rental, error) {
	interval, err := reservation.NewInterval(
		pgconv.TimeFromPgtype(row.StartsAt),
		pgconv.TimeFromPgtype(row.EndsAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid rental interval", err)
	}
	fuelStart, err := pgconv.Float64PtrFromNumeric(row.FuelLevelStart)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}
	fuelEnd, err := pgconv.Float64PtrFromNumeric(row.FuelLevelEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid fuel level", err)
	}

	return rental.Reconstruct(
		row.ID,
		row.CustomerID,
		row.VehicleID,
		pgconv.UUIDPtrFromPgtype(row.EmployeeID),
		row.PickupLocationID,
		row.ReturnLocationID,
		interval,
		pgconv.TimePtrFromPgtype(row.ActualReturnAt),
		row.DailyRateCents,
		row.TotalAmountCents,
		row.SecurityDepositCents,
		pgconv.Int32PtrFromPgtype(row.MileageStart),
		pgconv.Int32PtrFromPgtype(row.MileageEnd),
		fuelStart,
		fuelEnd,
		rental.Status(row.Status),
		row.DiscountCents,
		row.LateFeeCents,
		row.DamageFeeCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
