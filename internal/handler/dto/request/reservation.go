package request

import (
	"strings"
	"time"

	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CustomerID       uuid.UUID `json:"customer_id" binding:"required"`
	VehicleID        uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupLocationID uuid.UUID `json:"pickup_location_id" binding:"required"`
	ReturnLocationID uuid.UUID `json:"return_location_id" binding:"required"`
	StartsAt         time.Time `json:"starts_at" binding:"required"`
	EndsAt           time.Time `json:"ends_at" binding:"required"`
	SpecialRequests  *string   `json:"special_requests,omitempty"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		SpecialRequests:  trimPtr(r.SpecialRequests),
	}
}

type UpdateReservationRequest struct {
	VehicleID        uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupLocationID uuid.UUID `json:"pickup_location_id" binding:"required"`
	ReturnLocationID uuid.UUID `json:"return_location_id" binding:"required"`
	StartsAt         time.Time `json:"starts_at" binding:"required"`
	EndsAt           time.Time `json:"ends_at" binding:"required"`
	SpecialRequests  *string   `json:"special_requests,omitempty"`
}

func (r UpdateReservationRequest) ToCommand() commands.UpdateReservationRequest {
	return commands.UpdateReservationRequest{
		VehicleID:        r.VehicleID,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		SpecialRequests:  trimPtr(r.SpecialRequests),
	}
}

type ConvertReservationRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
