package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"
)

type CustomerRequest struct {
	FirstName     string     `json:"first_name" binding:"required"`
	LastName      string     `json:"last_name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone" binding:"required"`
	Address       *string    `json:"address,omitempty"`
	DriverLicense string     `json:"driver_license" binding:"required"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
}

func (r CustomerRequest) ToInput() commands.CustomerInput {
	return commands.CustomerInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		DriverLicense: r.DriverLicense,
		DateOfBirth:   r.DateOfBirth,
	}
}
