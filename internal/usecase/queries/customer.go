package queries

import (
	"context"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*CustomerDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*CustomerView, error)
	Search(ctx context.Context, term string, limit, offset int32) ([]*CustomerView, error)
	TopBySpending(ctx context.Context, limit int32) ([]*TopCustomerView, error)
}

type CustomerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*CustomerDetailView, error)
	List(ctx context.Context, limit, offset int32) ([]*CustomerView, error)
	Search(ctx context.Context, term string, limit, offset int32) ([]*CustomerView, error)
	TopBySpending(ctx context.Context, limit int32) ([]*TopCustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *customerQueriesImpl) GetDetailByID(ctx context.Context, id uuid.UUID) (*CustomerDetailView, error) {
	return q.repo.FindDetailByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context, limit, offset int32) ([]*CustomerView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.List(ctx, limit, offset)
}

func (q *customerQueriesImpl) Search(ctx context.Context, term string, limit, offset int32) ([]*CustomerView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.Search(ctx, term, limit, offset)
}

func (q *customerQueriesImpl) TopBySpending(ctx context.Context, limit int32) ([]*TopCustomerView, error) {
	if limit <= 0 {
		limit = 10
	}
	return q.repo.TopBySpending(ctx, limit)
}
