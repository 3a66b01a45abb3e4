package commands

import (
	"context"
	"errors"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound     = errs.New("rental not found")
	ErrVehicleUnavailable = errs.New("vehicle unavailable")
	ErrInvalidRentalState = errs.New("invalid rental state")
	ErrInvalidFees        = errs.New("fees cannot be negative")
)

type CreateRentalRequest struct {
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	EmployeeID       *uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	DiscountCents    int64
	MileageStart     *int32
	FuelLevelStart   *float64
}

type ReturnRentalRequest struct {
	MileageEnd     *int32
	FuelLevelEnd   *float64
	LateFeeCents   int64
	DamageFeeCents int64
}

type RentalCommands interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (uuid.UUID, error)
	ReturnRental(ctx context.Context, id uuid.UUID, req ReturnRentalRequest) error
	CancelRental(ctx context.Context, id uuid.UUID) error
}

type rentalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalUseCase(uow shared.UnitOfWork, clk clock.Clock) RentalCommands {
	return &rentalUseCaseImpl{uow: uow, clock: clk}
}

// CreateRental handles walk-up rentals. The vehicle is claimed with a guarded
// UPDATE before the insert; zero rows means someone else holds it.
func (uc *rentalUseCaseImpl) CreateRental(ctx context.Context, req CreateRentalRequest) (uuid.UUID, error) {
	interval, err := reservation.NewInterval(req.StartsAt, req.EndsAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicle, derr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = tx.Vehicles().Claim(ctx, tx.DB(), req.VehicleID); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrVehicleUnavailable)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		mileageStart := req.MileageStart
		if mileageStart == nil {
			mileageStart = &vehicle.Mileage
		}

		ren, derr := rental.NewRental(
			req.CustomerID, req.VehicleID, req.EmployeeID,
			req.PickupLocationID, req.ReturnLocationID,
			interval,
			vehicle.DailyRateCents, req.DiscountCents,
			mileageStart, req.FuelLevelStart,
		)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidFees)
		}

		id, derr := tx.Rentals().Create(ctx, tx.DB(), ren)
		if derr != nil {
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

// ReturnRental closes out an Active rental: records the return, recomputes the
// total with late and damage fees, puts the vehicle back in the pool with its
// new mileage, and accrues membership spending. A customer without a
// membership profile accrues nothing.
func (uc *rentalUseCaseImpl) ReturnRental(ctx context.Context, id uuid.UUID, req ReturnRentalRequest) error {
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ren, derr := tx.Rentals().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRentalNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = ren.Return(now, req.MileageEnd, req.FuelLevelEnd, req.LateFeeCents, req.DamageFeeCents); derr != nil {
			if errors.Is(derr, rental.ErrNegativeAmount) {
				return errs.Mark(derr, ErrInvalidFees)
			}
			return errs.Mark(derr, ErrInvalidRentalState)
		}

		if derr = tx.Rentals().Complete(ctx, tx.DB(), ren); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrInvalidRentalState)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = tx.Vehicles().Release(ctx, tx.DB(), ren.VehicleID(), req.MileageEnd); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// Zero affected rows means no profile; the return still succeeds.
		_, derr = tx.Memberships().AddSpending(ctx, tx.DB(), ren.CustomerID(), ren.TotalAmountCents(), now)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// CancelRental aborts an Active rental without charges and frees the vehicle.
func (uc *rentalUseCaseImpl) CancelRental(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ren, derr := tx.Rentals().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRentalNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = ren.Cancel(); derr != nil {
			return errs.Mark(derr, ErrInvalidRentalState)
		}

		if derr = tx.Rentals().Cancel(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrInvalidRentalState)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		return tx.Vehicles().Release(ctx, tx.DB(), ren.VehicleID(), nil)
	})
}
