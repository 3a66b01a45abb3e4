package queries

import (
	"context"

	"github.com/google/uuid"
)

// Staff roles
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleAgent    = "Agent"
	RoleMechanic = "Mechanic"
)

type EmployeeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context, limit, offset int32) ([]*EmployeeView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*EmployeeView, error)
	ListByRole(ctx context.Context, role string) ([]*EmployeeView, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*EmployeeView, error)
}

type EmployeeViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context, limit, offset int32) ([]*EmployeeView, error)
	ListActive(ctx context.Context, limit, offset int32) ([]*EmployeeView, error)
	ListByRole(ctx context.Context, role string) ([]*EmployeeView, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*EmployeeView, error)
}

type employeeQueriesImpl struct {
	repo EmployeeViewRepo
}

func NewEmployeeQueries(repo EmployeeViewRepo) EmployeeQueries {
	return &employeeQueriesImpl{repo: repo}
}

func (q *employeeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *employeeQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*EmployeeView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *employeeQueriesImpl) ListActive(ctx context.Context, limit, offset int32) ([]*EmployeeView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.ListActive(ctx, limit, offset)
}

func (q *employeeQueriesImpl) ListByRole(ctx context.Context, role string) ([]*EmployeeView, error) {
	return q.repo.ListByRole(ctx, role)
}

func (q *employeeQueriesImpl) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*EmployeeView, error) {
	return q.repo.ListByLocation(ctx, locationID)
}
