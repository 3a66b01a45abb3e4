package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                  uuid.UUID `json:"id"`
	CustomerID          uuid.UUID `json:"customer_id"`
	VehicleID           uuid.UUID `json:"vehicle_id"`
	PickupLocationID    uuid.UUID `json:"pickup_location_id"`
	ReturnLocationID    uuid.UUID `json:"return_location_id"`
	StartsAt            time.Time `json:"starts_at"`
	EndsAt              time.Time `json:"ends_at"`
	Status              string    `json:"status"`
	SpecialRequests     *string   `json:"special_requests,omitempty"`
	EstimatedTotalCents *int64    `json:"estimated_total_cents,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	CustomerName       string `json:"customer_name"`
	VehicleLabel       string `json:"vehicle_label"`
	LicensePlate       string `json:"license_plate"`
	PickupLocationName string `json:"pickup_location_name"`
	ReturnLocationName string `json:"return_location_name"`
}

type ConvertedReservationResponse struct {
	RentalID uuid.UUID `json:"rental_id"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		resp[i] = FromReservationView(v)
	}
	return resp
}

func FromReservationDetailView(v *queries.ReservationDetailView) *ReservationDetailResponse {
	var resp ReservationDetailResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
