package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Phone       string     `json:"phone" binding:"required"`
	Role        string     `json:"role" binding:"required"`
	HireDate    time.Time  `json:"hire_date" binding:"required"`
	SalaryCents *int64     `json:"salary_cents,omitempty"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	Password    string     `json:"password" binding:"required,min=8"`
}

func (r CreateEmployeeRequest) ToCommand() commands.CreateEmployeeRequest {
	return commands.CreateEmployeeRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role,
		HireDate:    r.HireDate,
		SalaryCents: r.SalaryCents,
		LocationID:  r.LocationID,
		ManagerID:   r.ManagerID,
		Password:    r.Password,
	}
}
