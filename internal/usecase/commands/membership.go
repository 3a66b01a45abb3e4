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

var (
	ErrMembershipProfileNotFound = errs.New("membership profile not found")
	ErrDuplicateMembership       = errs.New("customer already has a membership profile")
)

type CreateMembershipRequest struct {
	CustomerID    uuid.UUID
	Tier          string
	PointsBalance int32
}

type MembershipCommands interface {
	CreateProfile(ctx context.Context, req CreateMembershipRequest) (uuid.UUID, error)
	// AwardPoints accepts negative deltas; the balance may go below zero.
	AwardPoints(ctx context.Context, customerID uuid.UUID, points int32) error
	RecordSpending(ctx context.Context, customerID uuid.UUID, amountCents int64) error
}

type membershipUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMembershipUseCase(uow shared.UnitOfWork, clk clock.Clock) MembershipCommands {
	return &membershipUseCaseImpl{uow: uow, clock: clk}
}

func (uc *membershipUseCaseImpl) CreateProfile(ctx context.Context, req CreateMembershipRequest) (uuid.UUID, error) {
	tier := req.Tier
	if tier == "" {
		tier = "Standard"
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Memberships().Create(ctx, tx.DB(), sqlc.CreateMembershipProfileParams{
			CustomerID:    req.CustomerID,
			Tier:          tier,
			PointsBalance: req.PointsBalance,
			JoinDate:      pgconv.DateToPgtype(uc.clock.Now()),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateMembership)
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrCustomerNotFound)
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

func (uc *membershipUseCaseImpl) AwardPoints(ctx context.Context, customerID uuid.UUID, points int32) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.Memberships().AddPoints(ctx, tx.DB(), customerID, points, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrMembershipProfileNotFound
		}
		return nil
	})
}

func (uc *membershipUseCaseImpl) RecordSpending(ctx context.Context, customerID uuid.UUID, amountCents int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.Memberships().AddSpending(ctx, tx.DB(), customerID, amountCents, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrMembershipProfileNotFound
		}
		return nil
	})
}
