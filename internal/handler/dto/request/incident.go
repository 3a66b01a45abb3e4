package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReportIncidentRequest struct {
	RentalID           uuid.UUID `json:"rental_id" binding:"required"`
	OccurredAt         time.Time `json:"occurred_at" binding:"required"`
	Kind               string    `json:"kind" binding:"required"`
	Description        string    `json:"description" binding:"required"`
	EstimatedCostCents *int64    `json:"estimated_cost_cents,omitempty"`
	Photos             []byte    `json:"photos,omitempty"`
	PoliceReportNumber *string   `json:"police_report_number,omitempty"`
}

func (r ReportIncidentRequest) ToCommand(reportedBy *uuid.UUID) commands.ReportIncidentRequest {
	return commands.ReportIncidentRequest{
		RentalID:           r.RentalID,
		ReportedBy:         reportedBy,
		OccurredAt:         r.OccurredAt,
		Kind:               r.Kind,
		Description:        r.Description,
		EstimatedCostCents: r.EstimatedCostCents,
		Photos:             r.Photos,
		PoliceReportNumber: r.PoliceReportNumber,
	}
}
