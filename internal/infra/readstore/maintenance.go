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

type MaintenanceViewQueries interface {
	GetMaintenanceSchedule(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MaintenanceSchedules, error)
	ListMaintenanceByVehicle(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) ([]sqlc.MaintenanceSchedules, error)
	ListDueMaintenance(ctx context.Context, db sqlc.DBTX, dueOn pgtype.Date) ([]sqlc.MaintenanceSchedules, error)
	ListMechanicSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMechanicScheduleParams) ([]sqlc.MaintenanceSchedules, error)
}

type MaintenanceReadStore struct {
	queries MaintenanceViewQueries
	db      sqlc.DBTX
}

func NewMaintenanceReadStore(queries *sqlc.Queries, db sqlc.DBTX) *MaintenanceReadStore {
	return &MaintenanceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MaintenanceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MaintenanceView, error) {
	row, err := r.queries.GetMaintenanceSchedule(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("maintenance schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find maintenance schedule by ID", err)
	}
	return rowToMaintenanceView(row), nil
}

func (r *MaintenanceReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*queries.MaintenanceView, error) {
	rows, err := r.queries.ListMaintenanceByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance by vehicle", err)
	}
	return rowsToMaintenanceViews(rows), nil
}

func (r *MaintenanceReadStore) ListDue(ctx context.Context, dueOn time.Time) ([]*queries.MaintenanceView, error) {
	rows, err := r.queries.ListDueMaintenance(ctx, r.db, pgconv.DateToPgtype(dueOn))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due maintenance", err)
	}
	return rowsToMaintenanceViews(rows), nil
}

func (r *MaintenanceReadStore) MechanicSchedule(ctx context.Context, mechanicID uuid.UUID, from, to time.Time) ([]*queries.MaintenanceView, error) {
	rows, err := r.queries.ListMechanicSchedule(ctx, r.db, sqlc.ListMechanicScheduleParams{
		MechanicID: mechanicID,
		FromDate:   pgconv.DateToPgtype(from),
		ToDate:     pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list mechanic schedule", err)
	}
	return rowsToMaintenanceViews(rows), nil
}

func rowsToMaintenanceViews(rows []sqlc.MaintenanceSchedules) []*queries.MaintenanceView {
	result := make([]*queries.MaintenanceView, len(rows))
	for i, row := range rows {
		result[i] = rowToMaintenanceView(row)
	}
	return result
}

func rowToMaintenanceView(row sqlc.MaintenanceSchedules) *queries.MaintenanceView {
	return &queries.MaintenanceView{
		ID:          row.ID,
		VehicleID:   row.VehicleID,
		Kind:        row.Kind,
		ScheduledOn: pgconv.DateFromPgtype(row.ScheduledOn),
		CompletedOn: pgconv.DatePtrFromPgtype(row.CompletedOn),
		MechanicID:  pgconv.UUIDPtrFromPgtype(row.MechanicID),
		CostCents:   pgconv.Int64PtrFromPgtype(row.CostCents),
		Notes:       pgconv.StringPtrFromPgtype(row.Notes),
		Status:      row.Status,
	}
}
