package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleCommands    commands.VehicleCommands
	vehicleQueries     queries.VehicleQueries
	maintenanceQueries queries.MaintenanceQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries, maintenanceQueries queries.MaintenanceQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleCommands:    vehicleCommands,
		vehicleQueries:     vehicleQueries,
		maintenanceQueries: maintenanceQueries,
	}
}

// @Summary Create vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.vehicleCommands.CreateVehicle(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondVehicleWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List vehicles
// @Description List the fleet with optional filter criteria
// @Tags vehicles
// @Produce json
// @Param make query string false "Make"
// @Param model query string false "Model"
// @Param fuel_type query string false "Fuel type"
// @Param transmission query string false "Transmission"
// @Param min_year query int false "Minimum model year"
// @Param max_year query int false "Maximum model year"
// @Param available query bool false "Availability flag"
// @Param location_id query string false "Home location"
// @Param min_daily_rate_cents query int false "Minimum daily rate"
// @Param max_daily_rate_cents query int false "Maximum daily rate"
// @Param plate query string false "Exact license plate lookup"
// @Success 200 {array} queries.VehicleView
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	if plate := c.Query("plate"); plate != "" {
		view, err := h.vehicleQueries.GetByLicensePlate(c.Request.Context(), plate)
		if err != nil {
			respondReadError(c, err, "Vehicle not found")
			return
		}
		c.JSON(http.StatusOK, []*queries.VehicleView{view})
		return
	}

	var q reqdto.VehicleFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}

	views, err := h.vehicleQueries.Filter(c.Request.Context(), q.ToFilter())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List available vehicles
// @Tags vehicles
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.VehicleView
// @Router /vehicles/available [get]
func (h *VehicleHandler) ListAvailable(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	views, err := h.vehicleQueries.ListAvailable(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Vehicles due for maintenance
// @Tags vehicles
// @Produce json
// @Param due_on query string true "Due date (YYYY-MM-DD)"
// @Success 200 {array} queries.VehicleView
// @Failure 400 {object} map[string]string
// @Router /vehicles/maintenance-due [get]
func (h *VehicleHandler) DueForMaintenance(c *gin.Context) {
	dueOn, ok := parseDateQuery(c, "due_on")
	if !ok {
		return
	}

	views, err := h.vehicleQueries.DueForMaintenance(c.Request.Context(), dueOn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} queries.VehicleView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.vehicleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleRequest true "Vehicle"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.vehicleCommands.UpdateVehicle(c.Request.Context(), id, req.ToInput()); err != nil {
		h.respondVehicleWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set vehicle availability
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.VehicleAvailabilityRequest true "Availability"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/availability [patch]
func (h *VehicleHandler) SetAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.VehicleAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.vehicleCommands.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		h.respondVehicleWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Vehicle maintenance history
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {array} queries.MaintenanceView
// @Failure 400 {object} map[string]string
// @Router /vehicles/{id}/maintenance [get]
func (h *VehicleHandler) MaintenanceHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.maintenanceQueries.ListByVehicle(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *VehicleHandler) respondVehicleWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Vehicle not found",
		})
	case errors.Is(err, commands.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Location not found",
		})
	case errors.Is(err, commands.ErrDuplicateLicensePlate):
		c.JSON(http.StatusConflict, gin.H{
			"error": "License plate already registered",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
