package commands

import (
	"context"
	"time"

	"car-rental-api/internal/infra"
	sqlc "car-rental-api/internal/infra/sqlc/generated"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidIncident = errs.New("invalid incident data")

type ReportIncidentRequest struct {
	RentalID           uuid.UUID
	ReportedBy         *uuid.UUID
	OccurredAt         time.Time
	Kind               string
	Description        string
	EstimatedCostCents *int64
	Photos             []byte
	PoliceReportNumber *string
}

type IncidentCommands interface {
	ReportIncident(ctx context.Context, req ReportIncidentRequest) (uuid.UUID, error)
}

type incidentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewIncidentUseCase(uow shared.UnitOfWork) IncidentCommands {
	return &incidentUseCaseImpl{uow: uow}
}

func (uc *incidentUseCaseImpl) ReportIncident(ctx context.Context, req ReportIncidentRequest) (uuid.UUID, error) {
	if req.Description == "" {
		return uuid.Nil, ErrInvalidIncident
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Incidents().Create(ctx, tx.DB(), sqlc.CreateIncidentReportParams{
			RentalID:           req.RentalID,
			ReportedBy:         pgconv.UUIDPtrToPgtype(req.ReportedBy),
			OccurredAt:         pgconv.TimeToPgtype(req.OccurredAt),
			Kind:               req.Kind,
			Description:        req.Description,
			EstimatedCostCents: pgconv.Int64PtrToPgtype(req.EstimatedCostCents),
			Photos:             req.Photos,
			PoliceReportNumber: pgconv.StringPtrToPgtype(req.PoliceReportNumber),
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
