//go:build e2e

package e2e

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/dbtest"
	"car-rental-api/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RentalFlowE2ESuite struct {
	SharedSuite
}

func TestRentalFlowE2E(t *testing.T) {
	suite.Run(t, new(RentalFlowE2ESuite))
}

func (s *RentalFlowE2ESuite) login(email string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": "password123",
	}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *RentalFlowE2ESuite) TestReservationToReturnFlow() {
	s.Run("full booking lifecycle", func() {
		t := s.T()

		locationID := dbtest.CreateTestLocation(t, s.DB, "Downtown Branch", "Los Angeles")
		customerID := dbtest.CreateTestCustomer(t, s.DB, "jordan.smith@example.com", "D1234567")
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "ABC-1234", 5000, locationID)
		dbtest.CreateTestEmployee(t, s.DB, "agent@rental.example.com", "Agent", locationID)

		token := s.login("agent@rental.example.com")

		// Membership profile so the return can accrue spending
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/customers/"+customerID.String()+"/membership", nil, token)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		starts := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
		reserve := func(startDay, endDay int) *nethttptest.ResponseRecorder {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
				"customer_id":        customerID,
				"vehicle_id":         vehicleID,
				"pickup_location_id": locationID,
				"return_location_id": locationID,
				"starts_at":          starts.AddDate(0, 0, startDay).Format(time.RFC3339),
				"ends_at":            starts.AddDate(0, 0, endDay).Format(time.RFC3339),
			}, "")
			return rec
		}

		// [Jun 1, Jun 5) books fine
		rec = reserve(0, 4)
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		reservationID := created.ID

		// [Jun 3, Jun 7) collides with it
		rec = reserve(2, 6)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Vehicle already reserved for this interval")

		// [Jun 5, Jun 8) starts exactly at the previous end and is fine
		rec = reserve(4, 7)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		// Confirm then convert into a rental
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/reservations/"+reservationID.String()+"/confirm", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/reservations/"+reservationID.String()+"/convert", nil, token)
		var converted resdto.ConvertedReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &converted)
		rentalID := converted.RentalID
		s.NotEqual(uuid.Nil, rentalID)

		// Conversion takes the vehicle off the lot
		var vehicleView queries.VehicleView
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/vehicles/"+vehicleID.String(), nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &vehicleView)
		s.False(vehicleView.Availability)

		// Return with updated mileage
		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/rentals/"+rentalID.String()+"/return", map[string]any{
				"mileage_end": 15000,
			}, token)
		s.Equal(http.StatusNoContent, rec.Code)

		// The rental is completed and charged four days at the daily rate
		var rentalView resdto.RentalDetailResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rentals/"+rentalID.String(), nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &rentalView)
		s.Equal("Completed", rentalView.Status)
		s.Equal(int64(4*5000), rentalView.TotalAmountCents)

		// The vehicle is back on the lot with the new mileage
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/vehicles/"+vehicleID.String(), nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &vehicleView)
		s.True(vehicleView.Availability)
		s.Equal(int32(15000), vehicleView.Mileage)

		// Membership accrues the spend and the rental count
		var membership queries.MembershipProfileView
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/customers/"+customerID.String()+"/membership", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &membership)
		s.Equal("Standard", membership.Tier)
		s.Equal(int64(4*5000), membership.LifetimeSpendingCents)
		s.Equal(int32(1), membership.LifetimeRentals)
	})

	s.Run("cancelled reservations stop blocking the window", func() {
		t := s.T()

		locationID := dbtest.CreateTestLocation(t, s.DB, "Airport Branch", "Los Angeles")
		customerID := dbtest.CreateTestCustomer(t, s.DB, "casey.lee@example.com", "D7654321")
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "XYZ-9876", 4000, locationID)

		starts := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
		body := map[string]any{
			"customer_id":        customerID,
			"vehicle_id":         vehicleID,
			"pickup_location_id": locationID,
			"return_location_id": locationID,
			"starts_at":          starts.Format(time.RFC3339),
			"ends_at":            starts.AddDate(0, 0, 3).Format(time.RFC3339),
		}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", body, "")
		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/reservations/"+created.ID.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", body, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	s.Run("updates re-run the conflict check against the new window", func() {
		t := s.T()

		locationID := dbtest.CreateTestLocation(t, s.DB, "Harbor Branch", "Los Angeles")
		customerID := dbtest.CreateTestCustomer(t, s.DB, "riley.chen@example.com", "D2468013")
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "LMN-4567", 4500, locationID)

		starts := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
		reserve := func(startDay, endDay int) *nethttptest.ResponseRecorder {
			return httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", map[string]any{
				"customer_id":        customerID,
				"vehicle_id":         vehicleID,
				"pickup_location_id": locationID,
				"return_location_id": locationID,
				"starts_at":          starts.AddDate(0, 0, startDay).Format(time.RFC3339),
				"ends_at":            starts.AddDate(0, 0, endDay).Format(time.RFC3339),
			}, "")
		}

		// Two disjoint bookings on the same vehicle
		rec := reserve(0, 3)
		var first resdto.CreatedResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &first)

		rec = reserve(5, 8)
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

		update := func(startDay, endDay int) *nethttptest.ResponseRecorder {
			return httptest.PerformRequest(t, s.Router, http.MethodPut,
				"/api/reservations/"+first.ID.String(), map[string]any{
					"vehicle_id":         vehicleID,
					"pickup_location_id": locationID,
					"return_location_id": locationID,
					"starts_at":          starts.AddDate(0, 0, startDay).Format(time.RFC3339),
					"ends_at":            starts.AddDate(0, 0, endDay).Format(time.RFC3339),
				}, "")
		}

		// Moving the first booking onto the second one's window is rejected
		rec = update(4, 7)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Vehicle already reserved for this interval")

		// A free window is accepted and the stored interval moves
		rec = update(10, 13)
		s.Equal(http.StatusNoContent, rec.Code)

		var view resdto.ReservationDetailResponse
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/reservations/"+first.ID.String(), nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &view)
		s.Equal(starts.AddDate(0, 0, 10), view.StartsAt.UTC())
		s.Equal(starts.AddDate(0, 0, 13), view.EndsAt.UTC())
	})

	s.Run("write routes demand a valid token", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rentals", map[string]any{}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/rentals", map[string]any{}, "garbage-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
