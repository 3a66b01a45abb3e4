package commands

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name           string
	Address        string
	City           string
	State          string
	ZipCode        string
	Phone          *string
	OperatingHours *string
	ManagerID      *uuid.UUID
}

type LocationCommands interface {
	CreateLocation(ctx context.Context, req CreateLocationRequest) (uuid.UUID, error)
}

type locationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewLocationUseCase(uow shared.UnitOfWork) LocationCommands {
	return &locationUseCaseImpl{uow: uow}
}

func (uc *locationUseCaseImpl) CreateLocation(ctx context.Context, req CreateLocationRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Locations().Create(ctx, tx.DB(), sqlc.CreateLocationParams{
			Name:           req.Name,
			Address:        req.Address,
			City:           req.City,
			State:          req.State,
			ZipCode:        req.ZipCode,
			Phone:          pgconv.StringPtrToPgtype(req.Phone),
			OperatingHours: pgconv.StringPtrToPgtype(req.OperatingHours),
			ManagerID:      pgconv.UUIDPtrToPgtype(req.ManagerID),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrInvalidEmployee)
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
