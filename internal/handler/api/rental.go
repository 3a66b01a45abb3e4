package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create walk-up rental
// @Description Start a rental immediately, claiming the vehicle
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var employeeID *uuid.UUID
	if id, ok := middleware.GetEmployeeID(c); ok {
		employeeID = &id
	}

	id, err := h.rentalCommands.CreateRental(c.Request.Context(), req.ToCommand(employeeID))
	if err != nil {
		h.respondRentalWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List rentals
// @Description List rentals with optional filter criteria
// @Tags rentals
// @Produce json
// @Param customer_id query string false "Customer"
// @Param vehicle_id query string false "Vehicle"
// @Param status query string false "Status"
// @Param starts_from query string false "Earliest start"
// @Param starts_to query string false "Latest start"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.RentalResponse
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	var q reqdto.RentalFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}

	views, err := h.rentalQueries.Filter(c.Request.Context(), q.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary List active rentals
// @Tags rentals
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.RentalResponse
// @Router /rentals/active [get]
func (h *RentalHandler) ListActive(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	views, err := h.rentalQueries.ListActive(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary List overdue rentals
// @Description Active rentals whose scheduled end has passed without a return
// @Tags rentals
// @Produce json
// @Success 200 {array} resdto.RentalResponse
// @Router /rentals/overdue [get]
func (h *RentalHandler) ListOverdue(c *gin.Context) {
	views, err := h.rentalQueries.ListOverdue(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Get rental
// @Description Get a rental with joined customer, vehicle and location names
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.rentalQueries.GetDetailByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Rental not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalDetailView(view))
}

// @Summary List customer rentals
// @Tags rentals
// @Produce json
// @Param id path string true "Customer ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Router /customers/{id}/rentals [get]
func (h *RentalHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, offset := parseLimitOffset(c)

	views, err := h.rentalQueries.ListByCustomer(c.Request.Context(), customerID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Return rental
// @Description Close an Active rental, recomputing the final total and
// @Description releasing the vehicle
// @Tags rentals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.ReturnRentalRequest true "Return details"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) Return(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ReturnRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.rentalCommands.ReturnRental(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.respondRentalWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel rental
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rentalCommands.CancelRental(c.Request.Context(), id); err != nil {
		h.respondRentalWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Revenue report
// @Description Sum of completed rental totals over an inclusive start-date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/revenue [get]
func (h *RentalHandler) RevenueReport(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	report, err := h.rentalQueries.RevenueReport(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Range start is after range end",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueReportView(report))
}

func (h *RentalHandler) respondRentalWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Rental not found",
		})
	case errors.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrVehicleUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Vehicle is not available",
		})
	case errors.Is(err, commands.ErrInvalidRentalState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Rental state does not allow this operation",
		})
	case errors.Is(err, commands.ErrInvalidTimeRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Start time must be before end time",
		})
	case errors.Is(err, commands.ErrInvalidFees):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Fees cannot be negative",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
