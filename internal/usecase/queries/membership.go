package queries

import (
	"context"

	"github.com/google/uuid"
)

type MembershipQueries interface {
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*MembershipProfileView, error)
}

type MembershipViewRepo interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*MembershipProfileView, error)
}

type membershipQueriesImpl struct {
	repo MembershipViewRepo
}

func NewMembershipQueries(repo MembershipViewRepo) MembershipQueries {
	return &membershipQueriesImpl{repo: repo}
}

func (q *membershipQueriesImpl) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*MembershipProfileView, error) {
	return q.repo.FindByCustomer(ctx, customerID)
}
