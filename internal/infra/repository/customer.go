package repository

import (
	"context"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	queries *sqlc.Queries
}

func NewCustomerRepository(queries *sqlc.Queries) *CustomerRepository {
	return &CustomerRepository{queries: queries}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateCustomerParams) (uuid.UUID, error) {
	id, err := r.queries.CreateCustomer(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateCustomerParams) error {
	affected, err := r.queries.UpdateCustomer(ctx, tx, arg)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteCustomer(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
