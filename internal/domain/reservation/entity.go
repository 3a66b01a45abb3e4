package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive    = errors.New("reservation is not active")
	ErrNotConfirmed = errors.New("reservation is not confirmed")
	ErrTerminal     = errors.New("reservation is in a terminal state")
)

type Reservation struct {
	id               uuid.UUID
	customerID       uuid.UUID
	vehicleID        uuid.UUID
	pickupLocationID uuid.UUID
	returnLocationID uuid.UUID
	interval         Interval
	status           Status
	specialRequests  *string
	estimatedCents   *int64
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReservation builds a reservation in the Active state with an estimated
// total derived from the vehicle's daily rate.
func NewReservation(
	customerID, vehicleID, pickupLocationID, returnLocationID uuid.UUID,
	interval Interval,
	specialRequests *string,
	dailyRateCents int64,
) *Reservation {
	estimated := interval.EstimateTotalCents(dailyRateCents)
	return &Reservation{
		customerID:       customerID,
		vehicleID:        vehicleID,
		pickupLocationID: pickupLocationID,
		returnLocationID: returnLocationID,
		interval:         interval,
		status:           StatusActive,
		specialRequests:  specialRequests,
		estimatedCents:   &estimated,
	}
}

func Reconstruct(
	id, customerID, vehicleID, pickupLocationID, returnLocationID uuid.UUID,
	interval Interval,
	status Status,
	specialRequests *string,
	estimatedCents *int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		customerID:       customerID,
		vehicleID:        vehicleID,
		pickupLocationID: pickupLocationID,
		returnLocationID: returnLocationID,
		interval:         interval,
		status:           status,
		specialRequests:  specialRequests,
		estimatedCents:   estimatedCents,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Confirm moves Active -> Confirmed.
func (r *Reservation) Confirm() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel moves Active or Confirmed -> Cancelled.
func (r *Reservation) Cancel() error {
	if r.status.IsTerminal() {
		return ErrTerminal
	}
	r.status = StatusCancelled
	return nil
}

// Convert moves Confirmed -> Converted. Only confirmed reservations may
// become rentals.
func (r *Reservation) Convert() error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	r.status = StatusConverted
	return nil
}

func (r *Reservation) CanUpdate() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) CustomerID() uuid.UUID       { return r.customerID }
func (r *Reservation) VehicleID() uuid.UUID        { return r.vehicleID }
func (r *Reservation) PickupLocationID() uuid.UUID { return r.pickupLocationID }
func (r *Reservation) ReturnLocationID() uuid.UUID { return r.returnLocationID }
func (r *Reservation) Interval() Interval          { return r.interval }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) SpecialRequests() *string    { return r.specialRequests }
func (r *Reservation) EstimatedCents() *int64      { return r.estimatedCents }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
