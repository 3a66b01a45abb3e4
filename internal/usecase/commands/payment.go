package commands

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPayment = errs.New("invalid payment data")

// Payment methods and kinds accepted on record.
const (
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusPending   = "Pending"
)

type RecordPaymentRequest struct {
	RentalID      uuid.UUID
	AmountCents   int64
	Method        string
	TransactionID *string
	Status        string
	Kind          string
}

type PaymentCommands interface {
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (uuid.UUID, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *paymentUseCaseImpl) RecordPayment(ctx context.Context, req RecordPaymentRequest) (uuid.UUID, error) {
	if req.AmountCents < 0 {
		return uuid.Nil, ErrInvalidPayment
	}
	status := req.Status
	if status == "" {
		status = PaymentStatusCompleted
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Payments().Create(ctx, tx.DB(), sqlc.CreatePaymentParams{
			RentalID:      req.RentalID,
			PaidAt:        pgconv.TimeToPgtype(uc.clock.Now()),
			AmountCents:   req.AmountCents,
			Method:        req.Method,
			TransactionID: pgconv.StringPtrToPgtype(req.TransactionID),
			Status:        status,
			Kind:          req.Kind,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrRentalNotFound)
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
