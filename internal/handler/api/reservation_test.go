//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	"car-rental-api/tests/common/httptest"
	commandsmock "car-rental-api/tests/mock/commands"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/active", s.handler.ListActive)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PUT("/reservations/:id", s.handler.Update)
	s.router.POST("/reservations/:id/confirm", s.handler.Confirm)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.POST("/reservations/:id/convert", s.handler.Convert)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func utcReservationBuilder() *builder.ReservationBuilder {
	starts := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return builder.NewReservationBuilder().WithInterval(starts, starts.Add(96*time.Hour))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := utcReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new ID", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), b.BuildCreateCommand()).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"customer_id": b.CustomerID}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown vehicle",
				commandsError:  commands.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
			},
			{
				name:           "overlapping reservation",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Vehicle already reserved for this interval",
			},
			{
				name:           "inverted interval",
				commandsError:  commands.ErrInvalidTimeRange,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Start time must be before end time",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	b := utcReservationBuilder()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns 204 and forwards the new interval", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), id, reqBody.ToCommand()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"vehicle_id": b.VehicleID}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "moved onto an overlapping window",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Vehicle already reserved for this interval",
			},
			{
				name:           "reservation no longer active",
				commandsError:  commands.ErrInvalidReservationState,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation state does not allow this operation",
			},
			{
				name:           "inverted interval",
				commandsError:  commands.ErrInvalidTimeRange,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Start time must be before end time",
			},
			{
				name:           "unknown reservation",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), id, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: returns reservations", func() {
		views := []*queries.ReservationView{
			utcReservationBuilder().BuildView(),
			utcReservationBuilder().AsConfirmed().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), int32(20), int32(40)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=20&offset=40", nil, "")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("Confirmed", response[1].Status)
	})

	s.Run("success: active listing", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any(), int32(0), int32(0)).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/active", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the detail view", func() {
		b := utcReservationBuilder()
		view := b.BuildDetailView()
		s.mockQueries.EXPECT().GetDetailByID(gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+b.ID.String(), nil, "")

		var response resdto.ReservationDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(view.CustomerName, response.CustomerName)
		s.Equal(view.LicensePlate, response.LicensePlate)
	})

	s.Run("error: 400 for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: 404 for unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetDetailByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("confirm: returns 204 on success", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("confirm: 409 when the reservation is not active", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), id).
			Return(commands.ErrInvalidReservationState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation state does not allow this operation")
	})

	s.Run("cancel: returns 204 on success", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("cancel: 404 for unknown reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestConvert() {
	id := uuid.New()
	rentalID := uuid.New()

	s.Run("success: returns 201 with the rental ID", func() {
		s.mockCommands.EXPECT().ConvertToRental(gomock.Any(), id, gomock.Nil()).
			Return(&commands.ConvertReservationResult{RentalID: rentalID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/convert", nil, "")

		var response resdto.ConvertedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(rentalID, response.RentalID)
	})

	s.Run("success: passes the handling employee through", func() {
		employeeID := uuid.New()
		s.mockCommands.EXPECT().ConvertToRental(gomock.Any(), id, &employeeID).
			Return(&commands.ConvertReservationResult{RentalID: rentalID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/convert",
			map[string]any{"employee_id": employeeID}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 unless the reservation is confirmed", func() {
		s.mockCommands.EXPECT().ConvertToRental(gomock.Any(), id, gomock.Nil()).
			Return(nil, commands.ErrInvalidReservationState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/convert", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation state does not allow this operation")
	})

	s.Run("error: 409 when the vehicle is already out on another rental", func() {
		s.mockCommands.EXPECT().ConvertToRental(gomock.Any(), id, gomock.Nil()).
			Return(nil, commands.ErrVehicleUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/convert", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Vehicle is not available")
	})
}
