package commands

import (
	"context"
	"time"

	"car-rental-api/internal/domain/employee"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmployee = errs.New("employee email already registered")
	ErrInvalidEmployee   = errs.New("invalid employee data")
)

type CreateEmployeeRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Role        string
	HireDate    time.Time
	SalaryCents *int64
	LocationID  *uuid.UUID
	ManagerID   *uuid.UUID
	Password    string
}

type EmployeeCommands interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (uuid.UUID, error)
}

type employeeUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewEmployeeUseCase(uow shared.UnitOfWork) EmployeeCommands {
	return &employeeUseCaseImpl{uow: uow}
}

func (uc *employeeUseCaseImpl) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (uuid.UUID, error) {
	email, err := employee.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEmployee)
	}
	role, err := employee.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEmployee)
	}
	pass, err := employee.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEmployee)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidEmployee)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Employees().Create(ctx, tx.DB(), sqlc.CreateEmployeeParams{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        email.Value(),
			Phone:        req.Phone,
			Role:         role.String(),
			HireDate:     pgconv.DateToPgtype(req.HireDate),
			SalaryCents:  pgconv.Int64PtrToPgtype(req.SalaryCents),
			LocationID:   pgconv.UUIDPtrToPgtype(req.LocationID),
			ManagerID:    pgconv.UUIDPtrToPgtype(req.ManagerID),
			PasswordHash: hash,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateEmployee)
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrLocationNotFound)
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
