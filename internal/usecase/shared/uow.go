package shared

import (
	"context"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/reservation"
	sqlc "car-rental-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for check-then-insert
	// sequences (reservation overlap check); serialization failures retried
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rentals() RentalRepository
	Vehicles() VehicleRepository
	Customers() CustomerRepository
	Memberships() MembershipRepository
	Payments() PaymentRepository
	Employees() EmployeeRepository
	Locations() LocationRepository
	Insurance() InsuranceRepository
	Incidents() IncidentRepository
	Maintenance() MaintenanceRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	RentalByID(ctx context.Context, id uuid.UUID) (*RentalSnapshot, error)
	InsurancePlanByID(ctx context.Context, id uuid.UUID) (*InsurancePlanSnapshot, error)
	EmployeeByEmail(ctx context.Context, email string) (*EmployeeSnapshot, error)
}

// Minimal snapshots for command read operations

type VehicleSnapshot struct {
	ID             uuid.UUID
	DailyRateCents int64
	Availability   bool
	Mileage        int32
}

type ReservationSnapshot struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	VehicleID        uuid.UUID
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
	StartsAt         time.Time
	EndsAt           time.Time
	Status           string
}

type RentalSnapshot struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	StartsAt       time.Time
	EndsAt         time.Time
	Status         string
	DailyRateCents int64
}

type InsurancePlanSnapshot struct {
	ID             uuid.UUID
	DailyCostCents int64
	IsActive       bool
}

type EmployeeSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	CountConflicts(ctx context.Context, tx sqlc.DBTX, vehicleID uuid.UUID, interval reservation.Interval, excludeID *uuid.UUID) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateReservationParams) error
	Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Convert(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, ren *rental.Rental) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*rental.Rental, error)
	Complete(ctx context.Context, tx sqlc.DBTX, ren *rental.Rental) error
	Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type VehicleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateVehicleParams) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateVehicleParams) error
	SetAvailability(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, available bool) error
	// Claim flips availability to false; a vehicle already claimed yields a
	// CONFLICT repository error
	Claim(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, mileageEnd *int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateCustomerParams) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, arg sqlc.UpdateCustomerParams) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type MembershipRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateMembershipProfileParams) (uuid.UUID, error)
	// AddSpending and AddPoints return the number of affected rows so callers
	// can decide whether a missing profile is an error or a no-op
	AddSpending(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, amountCents int64, activityDate time.Time) (int64, error)
	AddPoints(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, points int32, activityDate time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateEmployeeParams) (uuid.UUID, error)
}

type LocationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateLocationParams) (uuid.UUID, error)
}

type InsuranceRepository interface {
	CreatePlan(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateInsurancePlanParams) (uuid.UUID, error)
	Attach(ctx context.Context, tx sqlc.DBTX, arg sqlc.AttachRentalInsuranceParams) error
}

type IncidentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateIncidentReportParams) (uuid.UUID, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, arg sqlc.CreateMaintenanceScheduleParams) (uuid.UUID, error)
}
