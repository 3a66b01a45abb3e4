package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationDetailRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.Reservations, error)
	ListActiveReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsParams) ([]sqlc.Reservations, error)
	ListReservationsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.ReservationDetailView, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation detail", err)
	}

	return &queries.ReservationDetailView{
		ReservationView: queries.ReservationView{
			ID:                  row.ID,
			CustomerID:          row.CustomerID,
			VehicleID:           row.VehicleID,
			PickupLocationID:    row.PickupLocationID,
			ReturnLocationID:    row.ReturnLocationID,
			StartsAt:            pgconv.TimeFromPgtype(row.StartsAt),
			EndsAt:              pgconv.TimeFromPgtype(row.EndsAt),
			Status:              row.Status,
			SpecialRequests:     pgconv.StringPtrFromPgtype(row.SpecialRequests),
			EstimatedTotalCents: pgconv.Int64PtrFromPgtype(row.EstimatedTotalCents),
			CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
		},
		CustomerName:       row.CustomerFirstName + " " + row.CustomerLastName,
		VehicleLabel:       row.VehicleMake + " " + row.VehicleModel,
		LicensePlate:       row.VehicleLicensePlate,
		PickupLocationName: row.PickupLocationName,
		ReturnLocationName: row.ReturnLocationName,
	}, nil
}

func (r *ReservationReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) ListActive(ctx context.Context, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListActiveReservations(ctx, r.db, sqlc.ListActiveReservationsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return rowsToReservationViews(rows), nil
}

func (r *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}
	return rowsToReservationViews(rows), nil
}

func rowsToReservationViews(rows []sqlc.Reservations) []*queries.ReservationView {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result
}

func rowToReservationView(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		VehicleID:           row.VehicleID,
		PickupLocationID:    row.PickupLocationID,
		ReturnLocationID:    row.ReturnLocationID,
		StartsAt:            pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:              pgconv.TimeFromPgtype(row.EndsAt),
		Status:              row.Status,
		SpecialRequests:     pgconv.StringPtrFromPgtype(row.SpecialRequests),
		EstimatedTotalCents: pgconv.Int64PtrFromPgtype(row.EstimatedTotalCents),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
