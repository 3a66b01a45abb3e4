package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	GetByLicensePlate(ctx context.Context, plate string) (*VehicleView, error)
	List(ctx context.Context, limit, offset int32) ([]*VehicleView, error)
	ListAvailable(ctx context.Context, limit, offset int32) ([]*VehicleView, error)
	Filter(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error)
	DueForMaintenance(ctx context.Context, dueOn time.Time) ([]*VehicleView, error)
}

type VehicleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindByLicensePlate(ctx context.Context, plate string) (*VehicleView, error)
	List(ctx context.Context, limit, offset int32) ([]*VehicleView, error)
	ListAvailable(ctx context.Context, limit, offset int32) ([]*VehicleView, error)
	Filter(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error)
	DueForMaintenance(ctx context.Context, dueOn time.Time) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	repo VehicleViewRepo
}

func NewVehicleQueries(repo VehicleViewRepo) VehicleQueries {
	return &vehicleQueriesImpl{repo: repo}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *vehicleQueriesImpl) GetByLicensePlate(ctx context.Context, plate string) (*VehicleView, error) {
	return q.repo.FindByLicensePlate(ctx, plate)
}

func (q *vehicleQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*VehicleView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *vehicleQueriesImpl) ListAvailable(ctx context.Context, limit, offset int32) ([]*VehicleView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.ListAvailable(ctx, limit, offset)
}

func (q *vehicleQueriesImpl) Filter(ctx context.Context, filter VehicleFilter) ([]*VehicleView, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return q.repo.Filter(ctx, filter)
}

func (q *vehicleQueriesImpl) DueForMaintenance(ctx context.Context, dueOn time.Time) ([]*VehicleView, error) {
	return q.repo.DueForMaintenance(ctx, dueOn)
}
