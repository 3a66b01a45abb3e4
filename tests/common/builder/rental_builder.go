//go:build unit || e2e

package builder

import (
	"time"

	domrental "car-rental-api/internal/domain/rental"
	domreservation "car-rental-api/internal/domain/reservation"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/pkg/ptr"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	EmployeeID       *uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	DailyRateCents   int64
	DiscountCents    int64
	MileageStart     *int32
	FuelLevelStart   *float64
	MileageEnd       *int32
	FuelLevelEnd     *float64
	LateFeeCents     int64
	DamageFeeCents   int64
	Status           domrental.Status
	CreatedAt        time.Time
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Now()
	starts := now.Truncate(time.Hour)
	return &RentalBuilder{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		VehicleID:        uuid.New(),
		EmployeeID:       ptr.To(uuid.New()),
		PickupLocationID: uuid.New(),
		ReturnLocationID: uuid.New(),
		StartsAt:         starts,
		EndsAt:           starts.Add(48 * time.Hour),
		DailyRateCents:   5000,
		DiscountCents:    0,
		MileageStart:     ptr.To(int32(12000)),
		FuelLevelStart:   ptr.To(1.0),
		Status:           domrental.StatusActive,
		CreatedAt:        now,
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	interval, err := domreservation.NewInterval(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	return domrental.NewRental(
		b.CustomerID, b.VehicleID, b.EmployeeID,
		b.PickupLocationID, b.ReturnLocationID,
		interval, b.DailyRateCents, b.DiscountCents,
		b.MileageStart, b.FuelLevelStart,
	)
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		CustomerID:       b.CustomerID,
		VehicleID:        b.VehicleID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		DiscountCents:    b.DiscountCents,
		MileageStart:     b.MileageStart,
		FuelLevelStart:   b.FuelLevelStart,
	}
}

func (b *RentalBuilder) BuildReturnRequestDTO() reqdto.ReturnRentalRequest {
	return reqdto.ReturnRentalRequest{
		MileageEnd:     b.MileageEnd,
		FuelLevelEnd:   b.FuelLevelEnd,
		LateFeeCents:   b.LateFeeCents,
		DamageFeeCents: b.DamageFeeCents,
	}
}

func (b *RentalBuilder) BuildCreateCommand() commands.CreateRentalRequest {
	return commands.CreateRentalRequest{
		CustomerID:       b.CustomerID,
		VehicleID:        b.VehicleID,
		EmployeeID:       b.EmployeeID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		DiscountCents:    b.DiscountCents,
		MileageStart:     b.MileageStart,
		FuelLevelStart:   b.FuelLevelStart,
	}
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	return &queries.RentalView{
		ID:                   b.ID,
		CustomerID:           b.CustomerID,
		VehicleID:            b.VehicleID,
		EmployeeID:           b.EmployeeID,
		PickupLocationID:     b.PickupLocationID,
		ReturnLocationID:     b.ReturnLocationID,
		StartsAt:             b.StartsAt,
		EndsAt:               b.EndsAt,
		DailyRateCents:       b.DailyRateCents,
		TotalAmountCents:     b.totalAmountCents(),
		SecurityDepositCents: domrental.DefaultSecurityDepositCents,
		MileageStart:         b.MileageStart,
		MileageEnd:           b.MileageEnd,
		FuelLevelStart:       b.FuelLevelStart,
		FuelLevelEnd:         b.FuelLevelEnd,
		Status:               b.Status.String(),
		DiscountCents:        b.DiscountCents,
		LateFeeCents:         b.LateFeeCents,
		DamageFeeCents:       b.DamageFeeCents,
		CreatedAt:            b.CreatedAt,
	}
}

func (b *RentalBuilder) BuildDetailView() *queries.RentalDetailView {
	return &queries.RentalDetailView{
		RentalView:         *b.BuildView(),
		CustomerName:       "Jordan Smith",
		VehicleLabel:       "2022 Toyota Corolla",
		LicensePlate:       "ABC-1234",
		PickupLocationName: "Downtown Branch",
		ReturnLocationName: "Airport Branch",
	}
}

func (b *RentalBuilder) totalAmountCents() int64 {
	interval, err := domreservation.NewInterval(b.StartsAt, b.EndsAt)
	if err != nil {
		return 0
	}
	total := interval.EstimateTotalCents(b.DailyRateCents) + b.LateFeeCents + b.DamageFeeCents - b.DiscountCents
	if total < 0 {
		total = 0
	}
	return total
}

// Fluent builder methods
func (b *RentalBuilder) WithID(id uuid.UUID) *RentalBuilder {
	b.ID = id
	return b
}

func (b *RentalBuilder) WithCustomerID(customerID uuid.UUID) *RentalBuilder {
	b.CustomerID = customerID
	return b
}

func (b *RentalBuilder) WithVehicleID(vehicleID uuid.UUID) *RentalBuilder {
	b.VehicleID = vehicleID
	return b
}

func (b *RentalBuilder) WithEmployeeID(employeeID *uuid.UUID) *RentalBuilder {
	b.EmployeeID = employeeID
	return b
}

func (b *RentalBuilder) WithInterval(startsAt, endsAt time.Time) *RentalBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *RentalBuilder) WithDailyRateCents(cents int64) *RentalBuilder {
	b.DailyRateCents = cents
	return b
}

func (b *RentalBuilder) WithDiscountCents(cents int64) *RentalBuilder {
	b.DiscountCents = cents
	return b
}

func (b *RentalBuilder) WithMileageStart(mileage *int32) *RentalBuilder {
	b.MileageStart = mileage
	return b
}

func (b *RentalBuilder) WithReturnDetails(mileageEnd *int32, fuelLevelEnd *float64, lateFeeCents, damageFeeCents int64) *RentalBuilder {
	b.MileageEnd = mileageEnd
	b.FuelLevelEnd = fuelLevelEnd
	b.LateFeeCents = lateFeeCents
	b.DamageFeeCents = damageFeeCents
	return b
}

func (b *RentalBuilder) AsCompleted() *RentalBuilder {
	b.Status = domrental.StatusCompleted
	return b
}

func (b *RentalBuilder) AsCancelled() *RentalBuilder {
	b.Status = domrental.StatusCancelled
	return b
}
