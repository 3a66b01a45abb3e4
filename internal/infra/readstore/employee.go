package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EmployeeViewQueries interface {
	GetEmployee(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Employees, error)
	GetEmployeeByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Employees, error)
	ListEmployees(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEmployeesParams) ([]sqlc.Employees, error)
	ListActiveEmployees(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveEmployeesParams) ([]sqlc.Employees, error)
	ListEmployeesByRole(ctx context.Context, db sqlc.DBTX, role string) ([]sqlc.Employees, error)
	ListEmployeesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) ([]sqlc.Employees, error)
}

type EmployeeReadStore struct {
	queries EmployeeViewQueries
	db      sqlc.DBTX
}

func NewEmployeeReadStore(queries *sqlc.Queries, db sqlc.DBTX) *EmployeeReadStore {
	return &EmployeeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	row, err := r.queries.GetEmployee(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}
	return rowToEmployeeView(row), nil
}

func (r *EmployeeReadStore) FindByEmail(ctx context.Context, email string) (*queries.EmployeeView, error) {
	row, err := r.queries.GetEmployeeByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by email", err)
	}
	return rowToEmployeeView(row), nil
}

// EmployeeCredentials carries the password hash for authentication; it is
// never exposed through the API read models.
type EmployeeCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

func (r *EmployeeReadStore) FindByEmailWithHash(ctx context.Context, email string) (*EmployeeCredentials, error) {
	row, err := r.queries.GetEmployeeByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee credentials", err)
	}
	return &EmployeeCredentials{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
	}, nil
}

func (r *EmployeeReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.EmployeeView, error) {
	rows, err := r.queries.ListEmployees(ctx, r.db, sqlc.ListEmployeesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	return rowsToEmployeeViews(rows), nil
}

func (r *EmployeeReadStore) ListActive(ctx context.Context, limit, offset int32) ([]*queries.EmployeeView, error) {
	rows, err := r.queries.ListActiveEmployees(ctx, r.db, sqlc.ListActiveEmployeesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active employees", err)
	}
	return rowsToEmployeeViews(rows), nil
}

func (r *EmployeeReadStore) ListByRole(ctx context.Context, role string) ([]*queries.EmployeeView, error) {
	rows, err := r.queries.ListEmployeesByRole(ctx, r.db, role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees by role", err)
	}
	return rowsToEmployeeViews(rows), nil
}

func (r *EmployeeReadStore) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*queries.EmployeeView, error) {
	rows, err := r.queries.ListEmployeesByLocation(ctx, r.db, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees by location", err)
	}
	return rowsToEmployeeViews(rows), nil
}

func rowsToEmployeeViews(rows []sqlc.Employees) []*queries.EmployeeView {
	result := make([]*queries.EmployeeView, len(rows))
	for i, row := range rows {
		result[i] = rowToEmployeeView(row)
	}
	return result
}

func rowToEmployeeView(row sqlc.Employees) *queries.EmployeeView {
	return &queries.EmployeeView{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		Phone:       row.Phone,
		Role:        row.Role,
		HireDate:    pgconv.DateFromPgtype(row.HireDate),
		SalaryCents: pgconv.Int64PtrFromPgtype(row.SalaryCents),
		LocationID:  pgconv.UUIDPtrFromPgtype(row.LocationID),
		ManagerID:   pgconv.UUIDPtrFromPgtype(row.ManagerID),
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
