package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationViewQueries interface {
	GetLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	ListLocations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLocationsParams) ([]sqlc.Locations, error)
	ListLocationsByCity(ctx context.Context, db sqlc.DBTX, city string) ([]sqlc.Locations, error)
	ListEmployeesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) ([]sqlc.Employees, error)
}

type LocationReadStore struct {
	queries LocationViewQueries
	db      sqlc.DBTX
}

func NewLocationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *LocationReadStore {
	return &LocationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	row, err := r.queries.GetLocation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return rowToLocationView(row), nil
}

func (r *LocationReadStore) FindDetailByID(ctx context.Context, id uuid.UUID) (*queries.LocationDetailView, error) {
	row, err := r.queries.GetLocation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location detail", err)
	}

	staff, err := r.queries.ListEmployeesByLocation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list location staff", err)
	}

	return &queries.LocationDetailView{
		LocationView: *rowToLocationView(row),
		Employees:    rowsToEmployeeViews(staff),
	}, nil
}

func (r *LocationReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocations(ctx, r.db, sqlc.ListLocationsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	return rowsToLocationViews(rows), nil
}

func (r *LocationReadStore) ListByCity(ctx context.Context, city string) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocationsByCity(ctx, r.db, city)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations by city", err)
	}
	return rowsToLocationViews(rows), nil
}

func rowsToLocationViews(rows []sqlc.Locations) []*queries.LocationView {
	result := make([]*queries.LocationView, len(rows))
	for i, row := range rows {
		result[i] = rowToLocationView(row)
	}
	return result
}

func rowToLocationView(row sqlc.Locations) *queries.LocationView {
	return &queries.LocationView{
		ID:             row.ID,
		Name:           row.Name,
		Address:        row.Address,
		City:           row.City,
		State:          row.State,
		ZipCode:        row.ZipCode,
		Phone:          pgconv.StringPtrFromPgtype(row.Phone),
		OperatingHours: pgconv.StringPtrFromPgtype(row.OperatingHours),
		ManagerID:      pgconv.UUIDPtrFromPgtype(row.ManagerID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
