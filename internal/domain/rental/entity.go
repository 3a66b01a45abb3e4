package rental

import (
	"errors"
	"time"

	"car-rental-api/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrNotActive      = errors.New("rental is not active")
	ErrNegativeAmount = errors.New("monetary amounts cannot be negative")
)

type Rental struct {
	id                   uuid.UUID
	customerID           uuid.UUID
	vehicleID            uuid.UUID
	employeeID           *uuid.UUID
	pickupLocationID     uuid.UUID
	returnLocationID     uuid.UUID
	interval             reservation.Interval
	actualReturnAt       *time.Time
	dailyRateCents       int64
	totalAmountCents     int64
	securityDepositCents int64
	mileageStart         *int32
	mileageEnd           *int32
	fuelLevelStart       *float64
	fuelLevelEnd         *float64
	status               Status
	discountCents        int64
	lateFeeCents         int64
	damageFeeCents       int64
	createdAt            time.Time
}

const DefaultSecurityDepositCents int64 = 20000

// NewRental builds an Active rental. The total starts as the base charge for
// the interval minus any discount; late and damage fees come in at return time.
func NewRental(
	customerID, vehicleID uuid.UUID,
	employeeID *uuid.UUID,
	pickupLocationID, returnLocationID uuid.UUID,
	interval reservation.Interval,
	dailyRateCents, discountCents int64,
	mileageStart *int32,
	fuelLevelStart *float64,
) (*Rental, error) {
	if dailyRateCents < 0 || discountCents < 0 {
		return nil, ErrNegativeAmount
	}
	total := interval.EstimateTotalCents(dailyRateCents) - discountCents
	if total < 0 {
		total = 0
	}
	return &Rental{
		customerID:           customerID,
		vehicleID:            vehicleID,
		employeeID:           employeeID,
		pickupLocationID:     pickupLocationID,
		returnLocationID:     returnLocationID,
		interval:             interval,
		dailyRateCents:       dailyRateCents,
		totalAmountCents:     total,
		securityDepositCents: DefaultSecurityDepositCents,
		mileageStart:         mileageStart,
		fuelLevelStart:       fuelLevelStart,
		status:               StatusActive,
		discountCents:        discountCents,
	}, nil
}

func Reconstruct(
	id, customerID, vehicleID uuid.UUID,
	employeeID *uuid.UUID,
	pickupLocationID, returnLocationID uuid.UUID,
	interval reservation.Interval,
	actualReturnAt *time.Time,
	dailyRateCents, totalAmountCents, securityDepositCents int64,
	mileageStart, mileageEnd *int32,
	fuelLevelStart, fuelLevelEnd *float64,
	status Status,
	discountCents, lateFeeCents, damageFeeCents int64,
	createdAt time.Time,
) *Rental {
	return &Rental{
		id:                   id,
		customerID:           customerID,
		vehicleID:            vehicleID,
		employeeID:           employeeID,
		pickupLocationID:     pickupLocationID,
		returnLocationID:     returnLocationID,
		interval:             interval,
		actualReturnAt:       actualReturnAt,
		dailyRateCents:       dailyRateCents,
		totalAmountCents:     totalAmountCents,
		securityDepositCents: securityDepositCents,
		mileageStart:         mileageStart,
		mileageEnd:           mileageEnd,
		fuelLevelStart:       fuelLevelStart,
		fuelLevelEnd:         fuelLevelEnd,
		status:               status,
		discountCents:        discountCents,
		lateFeeCents:         lateFeeCents,
		damageFeeCents:       damageFeeCents,
		createdAt:            createdAt,
	}
}

// Return closes out an Active rental: stamps the actual return time, records
// end-of-rental telemetry and fees, and recomputes the final total as
// base + late fee + damage fee - discount.
func (r *Rental) Return(
	now time.Time,
	mileageEnd *int32,
	fuelLevelEnd *float64,
	lateFeeCents, damageFeeCents int64,
) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if lateFeeCents < 0 || damageFeeCents < 0 {
		return ErrNegativeAmount
	}

	base := r.interval.EstimateTotalCents(r.dailyRateCents)
	total := base + lateFeeCents + damageFeeCents - r.discountCents
	if total < 0 {
		total = 0
	}

	r.actualReturnAt = &now
	r.mileageEnd = mileageEnd
	r.fuelLevelEnd = fuelLevelEnd
	r.lateFeeCents = lateFeeCents
	r.damageFeeCents = damageFeeCents
	r.totalAmountCents = total
	r.status = StatusCompleted
	return nil
}

// Cancel moves Active -> Cancelled.
func (r *Rental) Cancel() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	return nil
}

// IsOverdue reports whether an active rental has outstayed its interval.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.status == StatusActive && r.actualReturnAt == nil && now.After(r.interval.End())
}

func (r *Rental) ID() uuid.UUID                 { return r.id }
func (r *Rental) CustomerID() uuid.UUID         { return r.customerID }
func (r *Rental) VehicleID() uuid.UUID          { return r.vehicleID }
func (r *Rental) EmployeeID() *uuid.UUID        { return r.employeeID }
func (r *Rental) PickupLocationID() uuid.UUID   { return r.pickupLocationID }
func (r *Rental) ReturnLocationID() uuid.UUID   { return r.returnLocationID }
func (r *Rental) Interval() reservation.Interval {
	return r.interval
}
func (r *Rental) ActualReturnAt() *time.Time   { return r.actualReturnAt }
func (r *Rental) DailyRateCents() int64        { return r.dailyRateCents }
func (r *Rental) TotalAmountCents() int64      { return r.totalAmountCents }
func (r *Rental) SecurityDepositCents() int64  { return r.securityDepositCents }
func (r *Rental) MileageStart() *int32         { return r.mileageStart }
func (r *Rental) MileageEnd() *int32           { return r.mileageEnd }
func (r *Rental) FuelLevelStart() *float64     { return r.fuelLevelStart }
func (r *Rental) FuelLevelEnd() *float64       { return r.fuelLevelEnd }
func (r *Rental) Status() Status               { return r.status }
func (r *Rental) DiscountCents() int64         { return r.discountCents }
func (r *Rental) LateFeeCents() int64          { return r.lateFeeCents }
func (r *Rental) DamageFeeCents() int64        { return r.damageFeeCents }
func (r *Rental) CreatedAt() time.Time         { return r.createdAt }
