package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type IncidentViewQueries interface {
	GetIncidentReport(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.IncidentReports, error)
	ListIncidentReports(ctx context.Context, db sqlc.DBTX, arg sqlc.ListIncidentReportsParams) ([]sqlc.IncidentReports, error)
	ListIncidentsByRental(ctx context.Context, db sqlc.DBTX, rentalID uuid.UUID) ([]sqlc.IncidentReports, error)
	ListOpenIncidents(ctx context.Context, db sqlc.DBTX) ([]sqlc.IncidentReports, error)
}

type IncidentReadStore struct {
	queries IncidentViewQueries
	db      sqlc.DBTX
}

func NewIncidentReadStore(queries *sqlc.Queries, db sqlc.DBTX) *IncidentReadStore {
	return &IncidentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IncidentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IncidentView, error) {
	row, err := r.queries.GetIncidentReport(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("incident report not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find incident report by ID", err)
	}
	return rowToIncidentView(row), nil
}

func (r *IncidentReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.IncidentView, error) {
	rows, err := r.queries.ListIncidentReports(ctx, r.db, sqlc.ListIncidentReportsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incident reports", err)
	}
	return rowsToIncidentViews(rows), nil
}

func (r *IncidentReadStore) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]*queries.IncidentView, error) {
	rows, err := r.queries.ListIncidentsByRental(ctx, r.db, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incidents by rental", err)
	}
	return rowsToIncidentViews(rows), nil
}

func (r *IncidentReadStore) ListOpen(ctx context.Context) ([]*queries.IncidentView, error) {
	rows, err := r.queries.ListOpenIncidents(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open incidents", err)
	}
	return rowsToIncidentViews(rows), nil
}

func rowsToIncidentViews(rows []sqlc.IncidentReports) []*queries.IncidentView {
	result := make([]*queries.IncidentView, len(rows))
	for i, row := range rows {
		result[i] = rowToIncidentView(row)
	}
	return result
}

func rowToIncidentView(row sqlc.IncidentReports) *queries.IncidentView {
	return &queries.IncidentView{
		ID:                 row.ID,
		RentalID:           row.RentalID,
		ReportedBy:         pgconv.UUIDPtrFromPgtype(row.ReportedBy),
		OccurredAt:         pgconv.TimeFromPgtype(row.OccurredAt),
		Kind:               row.Kind,
		Description:        row.Description,
		EstimatedCostCents: pgconv.Int64PtrFromPgtype(row.EstimatedCostCents),
		Status:             row.Status,
		Photos:             row.Photos,
		PoliceReportNumber: pgconv.StringPtrFromPgtype(row.PoliceReportNumber),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
