//go:build unit

package response_test

import (
	"testing"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func TestFromReservationView(t *testing.T) {
	b := builder.NewReservationBuilder()
	view := b.BuildView()

	actual := resdto.FromReservationView(view)

	expected := &resdto.ReservationResponse{
		ID:                  view.ID,
		CustomerID:          view.CustomerID,
		VehicleID:           view.VehicleID,
		PickupLocationID:    view.PickupLocationID,
		ReturnLocationID:    view.ReturnLocationID,
		StartsAt:            view.StartsAt,
		EndsAt:              view.EndsAt,
		Status:              view.Status,
		SpecialRequests:     view.SpecialRequests,
		EstimatedTotalCents: view.EstimatedTotalCents,
		CreatedAt:           view.CreatedAt,
		UpdatedAt:           view.UpdatedAt,
	}

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("ReservationResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromReservationDetailView(t *testing.T) {
	b := builder.NewReservationBuilder().AsConfirmed()
	view := b.BuildDetailView()

	actual := resdto.FromReservationDetailView(view)

	assert.Equal(t, view.ID, actual.ID)
	assert.Equal(t, view.Status, actual.Status)
	assert.Equal(t, view.CustomerName, actual.CustomerName)
	assert.Equal(t, view.VehicleLabel, actual.VehicleLabel)
	assert.Equal(t, view.LicensePlate, actual.LicensePlate)
	assert.Equal(t, view.PickupLocationName, actual.PickupLocationName)
	assert.Equal(t, view.ReturnLocationName, actual.ReturnLocationName)
}

func TestFromRentalView(t *testing.T) {
	b := builder.NewRentalBuilder()
	view := b.BuildView()

	actual := resdto.FromRentalView(view)

	expected := &resdto.RentalResponse{
		ID:                   view.ID,
		CustomerID:           view.CustomerID,
		VehicleID:            view.VehicleID,
		EmployeeID:           view.EmployeeID,
		PickupLocationID:     view.PickupLocationID,
		ReturnLocationID:     view.ReturnLocationID,
		StartsAt:             view.StartsAt,
		EndsAt:               view.EndsAt,
		ActualReturnAt:       view.ActualReturnAt,
		DailyRateCents:       view.DailyRateCents,
		TotalAmountCents:     view.TotalAmountCents,
		SecurityDepositCents: view.SecurityDepositCents,
		MileageStart:         view.MileageStart,
		FuelLevelStart:       view.FuelLevelStart,
		Status:               view.Status,
		DiscountCents:        view.DiscountCents,
		CreatedAt:            view.CreatedAt,
	}

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("RentalResponse mismatch (-want +got):\n%s", diff)
	}
}
