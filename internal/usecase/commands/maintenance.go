package commands

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleMaintenanceRequest struct {
	VehicleID   uuid.UUID
	Kind        string
	ScheduledOn time.Time
	MechanicID  *uuid.UUID
	CostCents   *int64
	Notes       *string
}

type MaintenanceCommands interface {
	ScheduleMaintenance(ctx context.Context, req ScheduleMaintenanceRequest) (uuid.UUID, error)
}

type maintenanceUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMaintenanceUseCase(uow shared.UnitOfWork) MaintenanceCommands {
	return &maintenanceUseCaseImpl{uow: uow}
}

func (uc *maintenanceUseCaseImpl) ScheduleMaintenance(ctx context.Context, req ScheduleMaintenanceRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Maintenance().Create(ctx, tx.DB(), sqlc.CreateMaintenanceScheduleParams{
			VehicleID:   req.VehicleID,
			Kind:        req.Kind,
			ScheduledOn: pgconv.DateToPgtype(req.ScheduledOn),
			MechanicID:  pgconv.UUIDPtrToPgtype(req.MechanicID),
			CostCents:   pgconv.Int64PtrToPgtype(req.CostCents),
			Notes:       pgconv.StringPtrToPgtype(req.Notes),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrVehicleNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
