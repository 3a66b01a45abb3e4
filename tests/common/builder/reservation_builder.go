//go:build unit || e2e

package builder

import (
	"time"

	domreservation "car-rental-api/internal/domain/reservation"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/pkg/ptr"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	Status           domreservation.Status
	SpecialRequests  *string
	DailyRateCents   int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	starts := now.Add(24 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		VehicleID:        uuid.New(),
		PickupLocationID: uuid.New(),
		ReturnLocationID: uuid.New(),
		StartsAt:         starts,
		EndsAt:           starts.Add(72 * time.Hour),
		Status:           domreservation.StatusActive,
		SpecialRequests:  ptr.To("Child seat"),
		DailyRateCents:   5000,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	interval, err := domreservation.NewInterval(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	if b.Status == domreservation.StatusActive {
		return domreservation.NewReservation(
			b.CustomerID, b.VehicleID, b.PickupLocationID, b.ReturnLocationID,
			interval, b.SpecialRequests, b.DailyRateCents,
		), nil
	}
	estimated := interval.EstimateTotalCents(b.DailyRateCents)
	return domreservation.Reconstruct(
		b.ID, b.CustomerID, b.VehicleID, b.PickupLocationID, b.ReturnLocationID,
		interval, b.Status, b.SpecialRequests, &estimated, b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CustomerID:       b.CustomerID,
		VehicleID:        b.VehicleID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		SpecialRequests:  b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{
		VehicleID:        b.VehicleID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		SpecialRequests:  b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildCreateCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		CustomerID:       b.CustomerID,
		VehicleID:        b.VehicleID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		SpecialRequests:  b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	estimated := b.estimatedTotalCents()
	return &queries.ReservationView{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		VehicleID:           b.VehicleID,
		PickupLocationID:    b.PickupLocationID,
		ReturnLocationID:    b.ReturnLocationID,
		StartsAt:            b.StartsAt,
		EndsAt:              b.EndsAt,
		Status:              b.Status.String(),
		SpecialRequests:     b.SpecialRequests,
		EstimatedTotalCents: &estimated,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildDetailView() *queries.ReservationDetailView {
	return &queries.ReservationDetailView{
		ReservationView:    *b.BuildView(),
		CustomerName:       "Jordan Smith",
		VehicleLabel:       "2022 Toyota Corolla",
		LicensePlate:       "ABC-1234",
		PickupLocationName: "Downtown Branch",
		ReturnLocationName: "Airport Branch",
	}
}

func (b *ReservationBuilder) estimatedTotalCents() int64 {
	interval, err := domreservation.NewInterval(b.StartsAt, b.EndsAt)
	if err != nil {
		return 0
	}
	return interval.EstimateTotalCents(b.DailyRateCents)
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithCustomerID(customerID uuid.UUID) *ReservationBuilder {
	b.CustomerID = customerID
	return b
}

func (b *ReservationBuilder) WithVehicleID(vehicleID uuid.UUID) *ReservationBuilder {
	b.VehicleID = vehicleID
	return b
}

func (b *ReservationBuilder) WithInterval(startsAt, endsAt time.Time) *ReservationBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(requests *string) *ReservationBuilder {
	b.SpecialRequests = requests
	return b
}

func (b *ReservationBuilder) WithDailyRateCents(cents int64) *ReservationBuilder {
	b.DailyRateCents = cents
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = domreservation.StatusConfirmed
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = domreservation.StatusCancelled
	return b
}

func (b *ReservationBuilder) AsConverted() *ReservationBuilder {
	b.Status = domreservation.StatusConverted
	return b
}
