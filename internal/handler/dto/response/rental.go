package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RentalResponse struct {
	ID                   uuid.UUID  `json:"id"`
	CustomerID           uuid.UUID  `json:"customer_id"`
	VehicleID            uuid.UUID  `json:"vehicle_id"`
	EmployeeID           *uuid.UUID `json:"employee_id,omitempty"`
	PickupLocationID     uuid.UUID  `json:"pickup_location_id"`
	ReturnLocationID     uuid.UUID  `json:"return_location_id"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	ActualReturnAt       *time.Time `json:"actual_return_at,omitempty"`
	DailyRateCents       int64      `json:"daily_rate_cents"`
	TotalAmountCents     int64      `json:"total_amount_cents"`
	SecurityDepositCents int64      `json:"security_deposit_cents"`
	MileageStart         *int32     `json:"mileage_start,omitempty"`
	MileageEnd           *int32     `json:"mileage_end,omitempty"`
	FuelLevelStart       *float64   `json:"fuel_level_start,omitempty"`
	FuelLevelEnd         *float64   `json:"fuel_level_end,omitempty"`
	Status               string     `json:"status"`
	DiscountCents        int64      `json:"discount_cents"`
	LateFeeCents         int64      `json:"late_fee_cents"`
	DamageFeeCents       int64      `json:"damage_fee_cents"`
	CreatedAt            time.Time  `json:"created_at"`
}

type RentalDetailResponse struct {
	RentalResponse
	CustomerName       string `json:"customer_name"`
	VehicleLabel       string `json:"vehicle_label"`
	LicensePlate       string `json:"license_plate"`
	PickupLocationName string `json:"pickup_location_name"`
	ReturnLocationName string `json:"return_location_name"`
}

type RevenueReportResponse struct {
	FromDate          time.Time `json:"from_date"`
	ToDate            time.Time `json:"to_date"`
	TotalRevenueCents int64     `json:"total_revenue_cents"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRentalViews(vs []*queries.RentalView) []*RentalResponse {
	resp := make([]*RentalResponse, len(vs))
	for i, v := range vs {
		resp[i] = FromRentalView(v)
	}
	return resp
}

func FromRentalDetailView(v *queries.RentalDetailView) *RentalDetailResponse {
	var resp RentalDetailResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRevenueReportView(v *queries.RevenueReportView) *RevenueReportResponse {
	return &RevenueReportResponse{
		FromDate:          v.FromDate,
		ToDate:            v.ToDate,
		TotalRevenueCents: v.TotalRevenueCents,
	}
}
