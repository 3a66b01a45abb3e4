package request

import (
	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateInsurancePlanRequest struct {
	Name                string  `json:"name" binding:"required"`
	Description         *string `json:"description,omitempty"`
	DailyCostCents      int64   `json:"daily_cost_cents" binding:"required"`
	CoverageAmountCents int64   `json:"coverage_amount_cents" binding:"required"`
	DeductibleCents     int64   `json:"deductible_cents"`
	IsActive            *bool   `json:"is_active,omitempty"`
}

func (r CreateInsurancePlanRequest) ToCommand() commands.CreateInsurancePlanRequest {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.CreateInsurancePlanRequest{
		Name:                r.Name,
		Description:         r.Description,
		DailyCostCents:      r.DailyCostCents,
		CoverageAmountCents: r.CoverageAmountCents,
		DeductibleCents:     r.DeductibleCents,
		IsActive:            active,
	}
}

type AttachInsuranceRequest struct {
	PlanID uuid.UUID `json:"plan_id" binding:"required"`
}
