package commands

import (
	"context"
	"time"

	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInsurancePlanNotFound = errs.New("insurance plan not found")
	ErrInsurancePlanInactive = errs.New("insurance plan inactive")
	ErrInsuranceAlreadyAttached = errs.New("insurance plan already attached to rental")
)

type CreateInsurancePlanRequest struct {
	Name                string
	Description         *string
	DailyCostCents      int64
	CoverageAmountCents int64
	DeductibleCents     int64
	IsActive            bool
}

type AttachInsuranceResult struct {
	PremiumCents int64
}

type InsuranceCommands interface {
	CreatePlan(ctx context.Context, req CreateInsurancePlanRequest) (uuid.UUID, error)
	// AttachToRental snapshots the premium as daily cost times rental days so
	// later plan price changes do not affect existing rentals.
	AttachToRental(ctx context.Context, rentalID, planID uuid.UUID) (*AttachInsuranceResult, error)
}

type insuranceUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewInsuranceUseCase(uow shared.UnitOfWork) InsuranceCommands {
	return &insuranceUseCaseImpl{uow: uow}
}

func (uc *insuranceUseCaseImpl) CreatePlan(ctx context.Context, req CreateInsurancePlanRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Insurance().CreatePlan(ctx, tx.DB(), sqlc.CreateInsurancePlanParams{
			Name:                req.Name,
			Description:         pgconv.StringPtrToPgtype(req.Description),
			DailyCostCents:      req.DailyCostCents,
			CoverageAmountCents: req.CoverageAmountCents,
			DeductibleCents:     req.DeductibleCents,
			IsActive:            req.IsActive,
		})
		if derr != nil {
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

func (uc *insuranceUseCaseImpl) AttachToRental(ctx context.Context, rentalID, planID uuid.UUID) (*AttachInsuranceResult, error) {
	var premium int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, derr := tx.Reads().InsurancePlanByID(ctx, planID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrInsurancePlanNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !plan.IsActive {
			return ErrInsurancePlanInactive
		}

		ren, derr := tx.Reads().RentalByID(ctx, rentalID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRentalNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		days := rentalDays(ren.StartsAt, ren.EndsAt)
		premium = plan.DailyCostCents * days

		derr = tx.Insurance().Attach(ctx, tx.DB(), sqlc.AttachRentalInsuranceParams{
			RentalID:     rentalID,
			PlanID:       planID,
			StartDate:    pgconv.DateToPgtype(ren.StartsAt),
			EndDate:      pgconv.DateToPgtype(ren.EndsAt),
			PremiumCents: premium,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrInsuranceAlreadyAttached)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AttachInsuranceResult{PremiumCents: premium}, nil
}

func rentalDays(start, end time.Time) int64 {
	interval, err := reservation.NewInterval(start, end)
	if err != nil {
		return 1
	}
	return interval.Days()
}
