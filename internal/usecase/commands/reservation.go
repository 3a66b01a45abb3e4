package commands

import (
	"context"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidTimeRange        = errs.New("invalid time range")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrInvalidReservationState = errs.New("invalid reservation state")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationRequest struct {
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	SpecialRequests  *string
}

type UpdateReservationRequest struct {
	VehicleID        uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	SpecialRequests  *string
}

type ConvertReservationResult struct {
	RentalID uuid.UUID
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (uuid.UUID, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, req UpdateReservationRequest) error
	ConfirmReservation(ctx context.Context, id uuid.UUID) error
	CancelReservation(ctx context.Context, id uuid.UUID) error
	ConvertToRental(ctx context.Context, id uuid.UUID, employeeID *uuid.UUID) (*ConvertReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

// CreateReservation runs the overlap check and the insert inside one
// serializable transaction so concurrent bookings for the same vehicle
// cannot both pass the check.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (uuid.UUID, error) {
	interval, err := reservation.NewInterval(req.StartsAt, req.EndsAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	var createdID uuid.UUID
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicle, derr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		conflicts, derr := tx.Reservations().CountConflicts(ctx, tx.DB(), req.VehicleID, interval, nil)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if conflicts > 0 {
			return ErrReservationConflict
		}

		res := reservation.NewReservation(
			req.CustomerID, req.VehicleID,
			req.PickupLocationID, req.ReturnLocationID,
			interval, req.SpecialRequests,
			vehicle.DailyRateCents,
		)

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
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

// UpdateReservation mutates an Active reservation, re-running the overlap
// check against the new vehicle and interval with the reservation itself
// excluded.
func (uc *reservationUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, req UpdateReservationRequest) error {
	interval, err := reservation.NewInterval(req.StartsAt, req.EndsAt)
	if err != nil {
		return errs.Mark(err, ErrInvalidTimeRange)
	}

	return uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.Status != reservation.StatusActive.String() {
			return ErrInvalidReservationState
		}

		vehicle, derr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		conflicts, derr := tx.Reservations().CountConflicts(ctx, tx.DB(), req.VehicleID, interval, &id)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if conflicts > 0 {
			return ErrReservationConflict
		}

		estimated := interval.EstimateTotalCents(vehicle.DailyRateCents)
		derr = tx.Reservations().Update(ctx, tx.DB(), sqlc.UpdateReservationParams{
			ID:                  id,
			VehicleID:           req.VehicleID,
			PickupLocationID:    req.PickupLocationID,
			ReturnLocationID:    req.ReturnLocationID,
			StartsAt:            pgconv.TimeToPgtype(interval.Start()),
			EndsAt:              pgconv.TimeToPgtype(interval.End()),
			SpecialRequests:     pgconv.StringPtrToPgtype(req.SpecialRequests),
			EstimatedTotalCents: pgconv.Int64PtrToPgtype(&estimated),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrInvalidReservationState)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *reservationUseCaseImpl) ConfirmReservation(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Confirm()
	}, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Confirm(ctx, tx.DB(), id)
	})
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Cancel()
	}, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Cancel(ctx, tx.DB(), id)
	})
}

// transition validates the state change on the domain entity, then applies the
// guarded UPDATE. The row guard repeats the state check so a concurrent
// transition loses cleanly.
func (uc *reservationUseCaseImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	domainFn func(res *reservation.Reservation) error,
	applyFn func(ctx context.Context, tx shared.Tx) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		res := reconstructFromSnapshot(snap)
		if derr = domainFn(res); derr != nil {
			return errs.Mark(derr, ErrInvalidReservationState)
		}

		if derr = applyFn(ctx, tx); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrInvalidReservationState)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ConvertToRental turns a Confirmed reservation into an Active rental,
// copying the parties and locations, and takes the vehicle off the
// available pool. All three writes share one transaction.
func (uc *reservationUseCaseImpl) ConvertToRental(ctx context.Context, id uuid.UUID, employeeID *uuid.UUID) (*ConvertReservationResult, error) {
	var rentalID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		res := reconstructFromSnapshot(snap)
		if derr = res.Convert(); derr != nil {
			return errs.Mark(derr, ErrInvalidReservationState)
		}

		vehicle, derr := tx.Reads().VehicleByID(ctx, snap.VehicleID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		ren, derr := rental.NewRental(
			snap.CustomerID, snap.VehicleID, employeeID,
			snap.PickupLocationID, snap.ReturnLocationID,
			res.Interval(),
			vehicle.DailyRateCents, 0,
			&vehicle.Mileage, nil,
		)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = tx.Reservations().Convert(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrInvalidReservationState)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		createdID, derr := tx.Rentals().Create(ctx, tx.DB(), ren)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		rentalID = createdID

		if derr = tx.Vehicles().Claim(ctx, tx.DB(), snap.VehicleID); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrVehicleUnavailable)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ConvertReservationResult{RentalID: rentalID}, nil
}

func reconstructFromSnapshot(snap *shared.ReservationSnapshot) *reservation.Reservation {
	interval, err := reservation.NewInterval(snap.StartsAt, snap.EndsAt)
	if err != nil {
		// Stored reservations always satisfy starts_at < ends_at
		interval = reservation.Interval{}
	}
	return reservation.Reconstruct(
		snap.ID, snap.CustomerID, snap.VehicleID,
		snap.PickupLocationID, snap.ReturnLocationID,
		interval, reservation.Status(snap.Status),
		nil, nil,
		time.Time{}, time.Time{},
	)
}
