package repository

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipRepository struct {
	queries *sqlc.Queries
}

func NewMembershipRepository(queries *sqlc.Queries) *MembershipRepository {
	return &MembershipRepository{queries: queries}
}

func (r *MembershipRepository) Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateMembershipProfileParams) (uuid.UUID, error) {
	id, err := r.queries.CreateMembershipProfile(ctx, tx, arg)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create membership profile", err)
	}
	return id, nil
}

func (r *MembershipRepository) AddSpending(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, amountCents int64, activityDate time.Time) (int64, error) {
	affected, err := r.queries.AddMembershipSpending(ctx, tx, sqlc.AddMembershipSpendingParams{
		CustomerID:   customerID,
		AmountCents:  amountCents,
		ActivityDate: pgconv.DateToPgtype(activityDate),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add membership spending", err)
	}
	return affected, nil
}

func (r *MembershipRepository) AddPoints(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, points int32, activityDate time.Time) (int64, error) {
	affected, err := r.queries.AddMembershipPoints(ctx, tx, sqlc.AddMembershipPointsParams{
		CustomerID:   customerID,
		Points:       points,
		ActivityDate: pgconv.DateToPgtype(activityDate),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add membership points", err)
	}
	return affected, nil
}
