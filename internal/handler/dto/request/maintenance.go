package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ScheduleMaintenanceRequest struct {
	VehicleID   uuid.UUID  `json:"vehicle_id" binding:"required"`
	Kind        string     `json:"kind" binding:"required"`
	ScheduledOn time.Time  `json:"scheduled_on" binding:"required"`
	MechanicID  *uuid.UUID `json:"mechanic_id,omitempty"`
	CostCents   *int64     `json:"cost_cents,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (r ScheduleMaintenanceRequest) ToCommand() commands.ScheduleMaintenanceRequest {
	return commands.ScheduleMaintenanceRequest{
		VehicleID:   r.VehicleID,
		Kind:        r.Kind,
		ScheduledOn: r.ScheduledOn,
		MechanicID:  r.MechanicID,
		CostCents:   r.CostCents,
		Notes:       r.Notes,
	}
}
