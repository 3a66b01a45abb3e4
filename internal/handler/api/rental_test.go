//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
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

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler

	employeeID uuid.UUID
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.employeeID = uuid.New()

	// Stand-in for the auth middleware on the write routes
	withEmployee := func(c *gin.Context) {
		c.Set("employee_id", s.employeeID)
	}

	s.router.POST("/rentals", withEmployee, s.handler.Create)
	s.router.GET("/rentals", s.handler.List)
	s.router.GET("/rentals/overdue", s.handler.ListOverdue)
	s.router.GET("/rentals/:id", s.handler.Get)
	s.router.POST("/rentals/:id/return", withEmployee, s.handler.Return)
	s.router.POST("/rentals/:id/cancel", withEmployee, s.handler.Cancel)
	s.router.GET("/reports/revenue", s.handler.RevenueReport)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func utcRentalBuilder() *builder.RentalBuilder {
	starts := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return builder.NewRentalBuilder().WithInterval(starts, starts.Add(48*time.Hour))
}

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/rentals"

	b := utcRentalBuilder()
	reqBody := b.BuildCreateRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 and stamps the handling employee", func() {
		expected := b.WithEmployeeID(&s.employeeID).BuildCreateCommand()
		s.mockCommands.EXPECT().CreateRental(gomock.Any(), expected).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"vehicle_id": "zzz"}, "")
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
				name:           "vehicle unavailable",
				commandsError:  commands.ErrVehicleUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Vehicle is not available",
			},
			{
				name:           "unknown vehicle",
				commandsError:  commands.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
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
				s.mockCommands.EXPECT().CreateRental(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestList() {
	s.Run("success: passes filter criteria through", func() {
		b := utcRentalBuilder()
		s.mockQueries.EXPECT().Filter(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.RentalFilter) ([]*queries.RentalView, error) {
				s.Require().NotNil(filter.Status)
				s.Equal("Active", *filter.Status)
				s.Equal(int32(10), filter.Limit)
				return []*queries.RentalView{b.BuildView()}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals?status=Active&limit=10", nil, "")

		var response []*resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(b.ID, response[0].ID)
	})

	s.Run("success: overdue listing", func() {
		s.mockQueries.EXPECT().ListOverdue(gomock.Any(), gomock.Any()).
			Return([]*queries.RentalView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/overdue", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *RentalHandlerTestSuite) TestReturn() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		b := utcRentalBuilder().WithReturnDetails(nil, nil, 2000, 0)
		reqBody := b.BuildReturnRequestDTO()

		s.mockCommands.EXPECT().ReturnRental(gomock.Any(), id, b.BuildReturnRequestDTO().ToCommand()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/return", reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the rental is not active", func() {
		s.mockCommands.EXPECT().ReturnRental(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrInvalidRentalState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/return", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Rental state does not allow this operation")
	})

	s.Run("error: 422 for negative fees", func() {
		s.mockCommands.EXPECT().ReturnRental(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrInvalidFees).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/return",
			map[string]any{"late_fee_cents": -100}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Fees cannot be negative")
	})

	s.Run("error: 404 for unknown rental", func() {
		s.mockCommands.EXPECT().ReturnRental(gomock.Any(), id, gomock.Any()).
			Return(commands.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/return", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})
}

func (s *RentalHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CancelRental(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already completed", func() {
		s.mockCommands.EXPECT().CancelRental(gomock.Any(), id).
			Return(commands.ErrInvalidRentalState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rentals/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Rental state does not allow this operation")
	})
}

func (s *RentalHandlerTestSuite) TestRevenueReport() {
	s.Run("success: returns aggregated revenue", func() {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().RevenueReport(gomock.Any(), from, to).
			Return(&queries.RevenueReportView{FromDate: from, ToDate: to, TotalRevenueCents: 123400}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/revenue?from=2026-06-01&to=2026-06-30", nil, "")

		var response resdto.RevenueReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(123400), response.TotalRevenueCents)
	})

	s.Run("error: 400 when the range is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/revenue", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "from query parameter required")
	})

	s.Run("error: 400 when the range is inverted", func() {
		s.mockQueries.EXPECT().RevenueReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidReportRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports/revenue?from=2026-06-30&to=2026-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Range start is after range end")
	})
}
