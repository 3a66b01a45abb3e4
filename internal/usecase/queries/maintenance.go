package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MaintenanceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceView, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*MaintenanceView, error)
	ListDue(ctx context.Context, dueOn time.Time) ([]*MaintenanceView, error)
	MechanicSchedule(ctx context.Context, mechanicID uuid.UUID, from, to time.Time) ([]*MaintenanceView, error)
}

type MaintenanceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceView, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*MaintenanceView, error)
	ListDue(ctx context.Context, dueOn time.Time) ([]*MaintenanceView, error)
	MechanicSchedule(ctx context.Context, mechanicID uuid.UUID, from, to time.Time) ([]*MaintenanceView, error)
}

type maintenanceQueriesImpl struct {
	repo MaintenanceViewRepo
}

func NewMaintenanceQueries(repo MaintenanceViewRepo) MaintenanceQueries {
	return &maintenanceQueriesImpl{repo: repo}
}

func (q *maintenanceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *maintenanceQueriesImpl) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*MaintenanceView, error) {
	return q.repo.ListByVehicle(ctx, vehicleID)
}

func (q *maintenanceQueriesImpl) ListDue(ctx context.Context, dueOn time.Time) ([]*MaintenanceView, error) {
	return q.repo.ListDue(ctx, dueOn)
}

func (q *maintenanceQueriesImpl) MechanicSchedule(ctx context.Context, mechanicID uuid.UUID, from, to time.Time) ([]*MaintenanceView, error) {
	if from.After(to) {
		return nil, ErrInvalidReportRange
	}
	return q.repo.MechanicSchedule(ctx, mechanicID, from, to)
}
