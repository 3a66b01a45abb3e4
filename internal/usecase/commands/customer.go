package commands

import (
	"context"
	"time"

	"car-rental-api/internal/domain/customer"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errs.New("customer not found")
	ErrDuplicateCustomer = errs.New("customer email or driver license already registered")
	ErrInvalidCustomer   = errs.New("invalid customer data")
)

type CustomerInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       *string
	DriverLicense string
	DateOfBirth   *time.Time
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (uuid.UUID, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type customerUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerUseCase(uow shared.UnitOfWork) CustomerCommands {
	return &customerUseCaseImpl{uow: uow}
}

func (uc *customerUseCaseImpl) CreateCustomer(ctx context.Context, input CustomerInput) (uuid.UUID, error) {
	arg, err := customerParams(input)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Customers().Create(ctx, tx.DB(), sqlc.CreateCustomerParams{
			FirstName:     arg.FirstName,
			LastName:      arg.LastName,
			Email:         arg.Email,
			Phone:         arg.Phone,
			Address:       arg.Address,
			DriverLicense: arg.DriverLicense,
			DateOfBirth:   arg.DateOfBirth,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateCustomer)
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

func (uc *customerUseCaseImpl) UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) error {
	arg, err := customerParams(input)
	if err != nil {
		return err
	}
	arg.ID = id

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Customers().Update(ctx, tx.DB(), arg)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrCustomerNotFound)
			}
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateCustomer)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *customerUseCaseImpl) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Customers().Delete(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrCustomerNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func customerParams(input CustomerInput) (sqlc.UpdateCustomerParams, error) {
	email, err := customer.NewEmail(input.Email)
	if err != nil {
		return sqlc.UpdateCustomerParams{}, errs.Mark(err, ErrInvalidCustomer)
	}
	license, err := customer.NewDriverLicense(input.DriverLicense)
	if err != nil {
		return sqlc.UpdateCustomerParams{}, errs.Mark(err, ErrInvalidCustomer)
	}

	return sqlc.UpdateCustomerParams{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         email.Value(),
		Phone:         input.Phone,
		Address:       pgconv.StringPtrToPgtype(input.Address),
		DriverLicense: license.Value(),
		DateOfBirth:   pgconv.DatePtrToPgtype(input.DateOfBirth),
	}, nil
}
