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

type MaintenanceHandler struct {
	maintenanceCommands commands.MaintenanceCommands
	maintenanceQueries  queries.MaintenanceQueries
}

func NewMaintenanceHandler(maintenanceCommands commands.MaintenanceCommands, maintenanceQueries queries.MaintenanceQueries) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceCommands: maintenanceCommands,
		maintenanceQueries:  maintenanceQueries,
	}
}

// @Summary Schedule maintenance
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleMaintenanceRequest true "Maintenance"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance [post]
func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.maintenanceCommands.ScheduleMaintenance(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get maintenance record
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Success 200 {object} queries.MaintenanceView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.maintenanceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Maintenance record not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List due maintenance
// @Description Scheduled maintenance due on or before the given date
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param due_on query string true "Due date (YYYY-MM-DD)"
// @Success 200 {array} queries.MaintenanceView
// @Failure 400 {object} map[string]string
// @Router /maintenance/due [get]
func (h *MaintenanceHandler) ListDue(c *gin.Context) {
	dueOn, ok := parseDateQuery(c, "due_on")
	if !ok {
		return
	}

	views, err := h.maintenanceQueries.ListDue(c.Request.Context(), dueOn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Mechanic schedule
// @Description Maintenance assigned to a mechanic inside a date range
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mechanic (employee) ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} queries.MaintenanceView
// @Failure 400 {object} map[string]string
// @Router /employees/{id}/maintenance-schedule [get]
func (h *MaintenanceHandler) MechanicSchedule(c *gin.Context) {
	mechanicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	views, err := h.maintenanceQueries.MechanicSchedule(c.Request.Context(), mechanicID, from, to)
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

	c.JSON(http.StatusOK, views)
}
