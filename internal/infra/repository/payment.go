package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	queries *sqlc.Queries
}

func NewPaymentRepository(queries *sqlc.Queries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error) {
	id, err := r.queries.CreatePayment(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
