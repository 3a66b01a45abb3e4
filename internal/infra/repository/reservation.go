package repository

import (
	"context"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	queries *sqlc.Queries
}

func NewReservationRepository(queries *sqlc.Queries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	id, err := r.queries.CreateReservation(ctx, tx, sqlc.CreateReservationParams{
		CustomerID:          res.CustomerID(),
		VehicleID:           res.VehicleID(),
		PickupLocationID:    res.PickupLocationID(),
		ReturnLocationID:    res.ReturnLocationID(),
		StartsAt:            pgconv.TimeToPgtype(res.Interval().Start()),
		EndsAt:              pgconv.TimeToPgtype(res.Interval().End()),
		Status:              res.Status().String(),
		SpecialRequests:     pgconv.StringPtrToPgtype(res.SpecialRequests()),
		EstimatedTotalCents: pgconv.Int64PtrToPgtype(res.EstimatedCents()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) CountConflicts(ctx context.Context, tx sqlc.DBTX, vehicleID uuid.UUID, interval reservation.Interval, excludeID *uuid.UUID) (int64, error) {
	count, err := r.queries.CountConflictingReservations(ctx, tx, sqlc.CountConflictingReservationsParams{
		VehicleID: vehicleID,
		EndsAt:    pgconv.TimeToPgtype(interval.End()),
		StartsAt:  pgconv.TimeToPgtype(interval.Start()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count conflicting reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateReservationParams) error {
	affected, err := r.queries.UpdateReservation(ctx, tx, arg)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.ConfirmReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not confirmable", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.CancelReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not cancellable", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) Convert(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.ConvertReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to convert reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not convertible", nil, infra.KindConflict)
	}
	return nil
}
