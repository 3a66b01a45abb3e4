package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type CustomerView struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       *string    `json:"address,omitempty"`
	DriverLicense string     `json:"driver_license"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CustomerDetailView struct {
	CustomerView
	Membership *MembershipProfileView `json:"membership,omitempty"`
}

type TopCustomerView struct {
	CustomerView
	LifetimeSpendingCents int64 `json:"lifetime_spending_cents"`
	LifetimeRentals       int32 `json:"lifetime_rentals"`
}

type MembershipProfileView struct {
	ID                    uuid.UUID  `json:"id"`
	CustomerID            uuid.UUID  `json:"customer_id"`
	Tier                  string     `json:"tier"`
	PointsBalance         int32      `json:"points_balance"`
	JoinDate              time.Time  `json:"join_date"`
	LastActivityDate      *time.Time `json:"last_activity_date,omitempty"`
	LifetimeRentals       int32      `json:"lifetime_rentals"`
	LifetimeSpendingCents int64      `json:"lifetime_spending_cents"`
}

type VehicleView struct {
	ID              uuid.UUID  `json:"id"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	LicensePlate    string     `json:"license_plate"`
	Year            int32      `json:"year"`
	Availability    bool       `json:"availability"`
	DailyRateCents  int64      `json:"daily_rate_cents"`
	Mileage         int32      `json:"mileage"`
	FuelType        string     `json:"fuel_type"`
	Transmission    string     `json:"transmission"`
	SeatingCapacity int32      `json:"seating_capacity"`
	LocationID      *uuid.UUID `json:"location_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReservationView struct {
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

type ReservationDetailView struct {
	ReservationView
	CustomerName       string `json:"customer_name"`
	VehicleLabel       string `json:"vehicle_label"`
	LicensePlate       string `json:"license_plate"`
	PickupLocationName string `json:"pickup_location_name"`
	ReturnLocationName string `json:"return_location_name"`
}

type RentalView struct {
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

type RentalDetailView struct {
	RentalView
	CustomerName       string `json:"customer_name"`
	VehicleLabel       string `json:"vehicle_label"`
	LicensePlate       string `json:"license_plate"`
	PickupLocationName string `json:"pickup_location_name"`
	ReturnLocationName string `json:"return_location_name"`
}

type RevenueReportView struct {
	FromDate          time.Time `json:"from_date"`
	ToDate            time.Time `json:"to_date"`
	TotalRevenueCents int64     `json:"total_revenue_cents"`
}

type EmployeeView struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role"`
	HireDate   time.Time  `json:"hire_date"`
	SalaryCents *int64    `json:"salary_cents,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	ManagerID  *uuid.UUID `json:"manager_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type LocationView struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zip_code"`
	Phone          *string    `json:"phone,omitempty"`
	OperatingHours *string    `json:"operating_hours,omitempty"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type LocationDetailView struct {
	LocationView
	Employees []*EmployeeView `json:"employees"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	RentalID      uuid.UUID `json:"rental_id"`
	PaidAt        time.Time `json:"paid_at"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	Kind          string    `json:"kind"`
}

type PaymentsReportView struct {
	FromDate         time.Time `json:"from_date"`
	ToDate           time.Time `json:"to_date"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	PaymentCount     int64     `json:"payment_count"`
}

type InsurancePlanView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	DailyCostCents      int64     `json:"daily_cost_cents"`
	CoverageAmountCents int64     `json:"coverage_amount_cents"`
	DeductibleCents     int64     `json:"deductible_cents"`
	IsActive            bool      `json:"is_active"`
}

type RentalInsuranceView struct {
	RentalID     uuid.UUID `json:"rental_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	PlanName     string    `json:"plan_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	PremiumCents int64     `json:"premium_cents"`
}

type IncidentView struct {
	ID                 uuid.UUID  `json:"id"`
	RentalID           uuid.UUID  `json:"rental_id"`
	ReportedBy         *uuid.UUID `json:"reported_by,omitempty"`
	OccurredAt         time.Time  `json:"occurred_at"`
	Kind               string     `json:"kind"`
	Description        string     `json:"description"`
	EstimatedCostCents *int64     `json:"estimated_cost_cents,omitempty"`
	Status             string     `json:"status"`
	Photos             []byte     `json:"photos,omitempty"`
	PoliceReportNumber *string    `json:"police_report_number,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Optional criteria for fleet and rental searches; nil fields are ignored.

type VehicleFilter struct {
	Make              *string
	Model             *string
	FuelType          *string
	Transmission      *string
	MinYear           *int32
	MaxYear           *int32
	Availability      *bool
	LocationID        *uuid.UUID
	MinDailyRateCents *int64
	MaxDailyRateCents *int64
	Limit             int32
	Offset            int32
}

type RentalFilter struct {
	CustomerID       *uuid.UUID
	VehicleID        *uuid.UUID
	Status           *string
	StartsFrom       *time.Time
	StartsTo         *time.Time
	PickupLocationID *uuid.UUID
	ReturnLocationID *uuid.UUID
	Limit            int32
	Offset           int32
}

type MaintenanceView struct {
	ID          uuid.UUID  `json:"id"`
	VehicleID   uuid.UUID  `json:"vehicle_id"`
	Kind        string     `json:"kind"`
	ScheduledOn time.Time  `json:"scheduled_on"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	MechanicID  *uuid.UUID `json:"mechanic_id,omitempty"`
	CostCents   *int64     `json:"cost_cents,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Status      string     `json:"status"`
}
