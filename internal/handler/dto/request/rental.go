package request

import (
	"time"

	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	CustomerID       uuid.UUID `json:"customer_id" binding:"required"`
	VehicleID        uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupLocationID uuid.UUID `json:"pickup_location_id" binding:"required"`
	ReturnLocationID uuid.UUID `json:"return_location_id" binding:"required"`
	StartsAt         time.Time `json:"starts_at" binding:"required"`
	EndsAt           time.Time `json:"ends_at" binding:"required"`
	DiscountCents    int64     `json:"discount_cents"`
	MileageStart     *int32    `json:"mileage_start,omitempty"`
	FuelLevelStart   *float64  `json:"fuel_level_start,omitempty"`
}

func (r CreateRentalRequest) ToCommand(employeeID *uuid.UUID) commands.CreateRentalRequest {
	return commands.CreateRentalRequest{
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		EmployeeID:       employeeID,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		DiscountCents:    r.DiscountCents,
		MileageStart:     r.MileageStart,
		FuelLevelStart:   r.FuelLevelStart,
	}
}

type ReturnRentalRequest struct {
	MileageEnd     *int32   `json:"mileage_end,omitempty"`
	FuelLevelEnd   *float64 `json:"fuel_level_end,omitempty"`
	LateFeeCents   int64    `json:"late_fee_cents"`
	DamageFeeCents int64    `json:"damage_fee_cents"`
}

func (r ReturnRentalRequest) ToCommand() commands.ReturnRentalRequest {
	return commands.ReturnRentalRequest{
		MileageEnd:     r.MileageEnd,
		FuelLevelEnd:   r.FuelLevelEnd,
		LateFeeCents:   r.LateFeeCents,
		DamageFeeCents: r.DamageFeeCents,
	}
}

type RentalFilterQuery struct {
	CustomerID       *uuid.UUID `form:"customer_id"`
	VehicleID        *uuid.UUID `form:"vehicle_id"`
	Status           *string    `form:"status"`
	StartsFrom       *time.Time `form:"starts_from"`
	StartsTo         *time.Time `form:"starts_to"`
	PickupLocationID *uuid.UUID `form:"pickup_location_id"`
	ReturnLocationID *uuid.UUID `form:"return_location_id"`
	Limit            int32      `form:"limit"`
	Offset           int32      `form:"offset"`
}

func (q RentalFilterQuery) ToFilter() queries.RentalFilter {
	return queries.RentalFilter{
		CustomerID:       q.CustomerID,
		VehicleID:        q.VehicleID,
		Status:           q.Status,
		StartsFrom:       q.StartsFrom,
		StartsTo:         q.StartsTo,
		PickupLocationID: q.PickupLocationID,
		ReturnLocationID: q.ReturnLocationID,
		Limit:            q.Limit,
		Offset:           q.Offset,
	}
}
