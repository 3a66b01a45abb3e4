package readstore

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VehicleViewQueries interface {
	GetVehicle(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	GetVehicleByLicensePlate(ctx context.Context, db sqlc.DBTX, licensePlate string) (sqlc.Vehicles, error)
	ListVehicles(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVehiclesParams) ([]sqlc.Vehicles, error)
	ListAvailableVehicles(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableVehiclesParams) ([]sqlc.Vehicles, error)
	FilterVehicles(ctx context.Context, db sqlc.DBTX, arg sqlc.FilterVehiclesParams) ([]sqlc.Vehicles, error)
	ListVehiclesDueForMaintenance(ctx context.Context, db sqlc.DBTX, dueOn pgtype.Date) ([]sqlc.Vehicles, error)
}

type VehicleReadStore struct {
	queries VehicleViewQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries *sqlc.Queries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row, err := r.queries.GetVehicle(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return rowToVehicleView(row), nil
}

func (r *VehicleReadStore) FindByLicensePlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	row, err := r.queries.GetVehicleByLicensePlate(ctx, r.db, plate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by license plate", err)
	}
	return rowToVehicleView(row), nil
}

func (r *VehicleReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListVehicles(ctx, r.db, sqlc.ListVehiclesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	return rowsToVehicleViews(rows), nil
}

func (r *VehicleReadStore) ListAvailable(ctx context.Context, limit, offset int32) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListAvailableVehicles(ctx, r.db, sqlc.ListAvailableVehiclesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vehicles", err)
	}
	return rowsToVehicleViews(rows), nil
}

func (r *VehicleReadStore) Filter(ctx context.Context, filter queries.VehicleFilter) ([]*queries.VehicleView, error) {
	rows, err := r.queries.FilterVehicles(ctx, r.db, sqlc.FilterVehiclesParams{
		Limit:             filter.Limit,
		Offset:            filter.Offset,
		Make:              pgconv.StringPtrToPgtype(filter.Make),
		Model:             pgconv.StringPtrToPgtype(filter.Model),
		FuelType:          pgconv.StringPtrToPgtype(filter.FuelType),
		Transmission:      pgconv.StringPtrToPgtype(filter.Transmission),
		MinYear:           pgconv.Int32PtrToPgtype(filter.MinYear),
		MaxYear:           pgconv.Int32PtrToPgtype(filter.MaxYear),
		Availability:      pgconv.BoolPtrToPgtype(filter.Availability),
		LocationID:        pgconv.UUIDPtrToPgtype(filter.LocationID),
		MinDailyRateCents: pgconv.Int64PtrToPgtype(filter.MinDailyRateCents),
		MaxDailyRateCents: pgconv.Int64PtrToPgtype(filter.MaxDailyRateCents),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter vehicles", err)
	}
	return rowsToVehicleViews(rows), nil
}

func (r *VehicleReadStore) DueForMaintenance(ctx context.Context, dueOn time.Time) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListVehiclesDueForMaintenance(ctx, r.db, pgconv.DateToPgtype(dueOn))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles due for maintenance", err)
	}
	return rowsToVehicleViews(rows), nil
}

func rowsToVehicleViews(rows []sqlc.Vehicles) []*queries.VehicleView {
	result := make([]*queries.VehicleView, len(rows))
	for i, row := range rows {
		result[i] = rowToVehicleView(row)
	}
	return result
}

func rowToVehicleView(row sqlc.Vehicles) *queries.VehicleView {
	return &queries.VehicleView{
		ID:              row.ID,
		Make:            row.Make,
		Model:           row.Model,
		LicensePlate:    row.LicensePlate,
		Year:            row.Year,
		Availability:    row.Availability,
		DailyRateCents:  row.DailyRateCents,
		Mileage:         row.Mileage,
		FuelType:        row.FuelType,
		Transmission:    row.Transmission,
		SeatingCapacity: row.SeatingCapacity,
		LocationID:      pgconv.UUIDPtrFromPgtype(row.LocationID),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
