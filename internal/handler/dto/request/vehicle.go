package request

import (
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleRequest struct {
	Make            string     `json:"make" binding:"required"`
	Model           string     `json:"model" binding:"required"`
	LicensePlate    string     `json:"license_plate" binding:"required"`
	Year            int32      `json:"year" binding:"required"`
	DailyRateCents  int64      `json:"daily_rate_cents" binding:"required"`
	Mileage         int32      `json:"mileage"`
	FuelType        string     `json:"fuel_type" binding:"required"`
	Transmission    string     `json:"transmission" binding:"required"`
	SeatingCapacity int32      `json:"seating_capacity" binding:"required"`
	LocationID      *uuid.UUID `json:"location_id,omitempty"`
}

func (r VehicleRequest) ToInput() commands.VehicleInput {
	return commands.VehicleInput{
		Make:            r.Make,
		Model:           r.Model,
		LicensePlate:    r.LicensePlate,
		Year:            r.Year,
		DailyRateCents:  r.DailyRateCents,
		Mileage:         r.Mileage,
		FuelType:        r.FuelType,
		Transmission:    r.Transmission,
		SeatingCapacity: r.SeatingCapacity,
		LocationID:      r.LocationID,
	}
}

type VehicleAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// VehicleFilterQuery maps query-string parameters onto the read-side filter.
type VehicleFilterQuery struct {
	Make              *string    `form:"make"`
	Model             *string    `form:"model"`
	FuelType          *string    `form:"fuel_type"`
	Transmission      *string    `form:"transmission"`
	MinYear           *int32     `form:"min_year"`
	MaxYear           *int32     `form:"max_year"`
	Availability      *bool      `form:"available"`
	LocationID        *uuid.UUID `form:"location_id"`
	MinDailyRateCents *int64     `form:"min_daily_rate_cents"`
	MaxDailyRateCents *int64     `form:"max_daily_rate_cents"`
	Limit             int32      `form:"limit"`
	Offset            int32      `form:"offset"`
}

func (q VehicleFilterQuery) ToFilter() queries.VehicleFilter {
	return queries.VehicleFilter{
		Make:              q.Make,
		Model:             q.Model,
		FuelType:          q.FuelType,
		Transmission:      q.Transmission,
		MinYear:           q.MinYear,
		MaxYear:           q.MaxYear,
		Availability:      q.Availability,
		LocationID:        q.LocationID,
		MinDailyRateCents: q.MinDailyRateCents,
		MaxDailyRateCents: q.MaxDailyRateCents,
		Limit:             q.Limit,
		Offset:            q.Offset,
	}
}
