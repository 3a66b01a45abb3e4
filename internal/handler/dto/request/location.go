package request

import (
	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name           string     `json:"name" binding:"required"`
	Address        string     `json:"address" binding:"required"`
	City           string     `json:"city" binding:"required"`
	State          string     `json:"state" binding:"required"`
	ZipCode        string     `json:"zip_code" binding:"required"`
	Phone          *string    `json:"phone,omitempty"`
	OperatingHours *string    `json:"operating_hours,omitempty"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty"`
}

func (r CreateLocationRequest) ToCommand() commands.CreateLocationRequest {
	return commands.CreateLocationRequest{
		Name:           r.Name,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		Phone:          r.Phone,
		OperatingHours: r.OperatingHours,
		ManagerID:      r.ManagerID,
	}
}
