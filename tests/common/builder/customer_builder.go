//go:build unit || e2e

package builder

import (
	"time"

	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/pkg/ptr"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       *string
	DriverLicense string
	DateOfBirth   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	now := time.Now()
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	return &CustomerBuilder{
		ID:            uuid.New(),
		FirstName:     "Jordan",
		LastName:      "Smith",
		Email:         "jordan.smith@example.com",
		Phone:         "+1-555-0100",
		Address:       ptr.To("42 Main St, Springfield"),
		DriverLicense: "D1234567",
		DateOfBirth:   &dob,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildInput() commands.CustomerInput {
	return commands.CustomerInput{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		DriverLicense: b.DriverLicense,
		DateOfBirth:   b.DateOfBirth,
	}
}

func (b *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		DriverLicense: b.DriverLicense,
		DateOfBirth:   b.DateOfBirth,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:            b.ID,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		DriverLicense: b.DriverLicense,
		DateOfBirth:   b.DateOfBirth,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *CustomerBuilder) WithID(id uuid.UUID) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithName(first, last string) *CustomerBuilder {
	b.FirstName = first
	b.LastName = last
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.Phone = phone
	return b
}

func (b *CustomerBuilder) WithDriverLicense(license string) *CustomerBuilder {
	b.DriverLicense = license
	return b
}

func (b *CustomerBuilder) WithDateOfBirth(dob *time.Time) *CustomerBuilder {
	b.DateOfBirth = dob
	return b
}
