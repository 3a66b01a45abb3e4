package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IncidentHandler struct {
	incidentCommands commands.IncidentCommands
	incidentQueries  queries.IncidentQueries
}

func NewIncidentHandler(incidentCommands commands.IncidentCommands, incidentQueries queries.IncidentQueries) *IncidentHandler {
	return &IncidentHandler{
		incidentCommands: incidentCommands,
		incidentQueries:  incidentQueries,
	}
}

// @Summary Report incident
// @Tags incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReportIncidentRequest true "Incident"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /incidents [post]
func (h *IncidentHandler) Report(c *gin.Context) {
	var req reqdto.ReportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var reportedBy *uuid.UUID
	if id, ok := middleware.GetEmployeeID(c); ok {
		reportedBy = &id
	}

	id, err := h.incidentCommands.ReportIncident(c.Request.Context(), req.ToCommand(reportedBy))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrInvalidIncident):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid incident data",
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

// @Summary List incidents
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Param open query bool false "Only open incidents"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.IncidentView
// @Router /incidents [get]
func (h *IncidentHandler) List(c *gin.Context) {
	var (
		views []*queries.IncidentView
		err   error
	)
	if c.Query("open") == "true" {
		views, err = h.incidentQueries.ListOpen(c.Request.Context())
	} else {
		limit, offset := parseLimitOffset(c)
		views, err = h.incidentQueries.List(c.Request.Context(), limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get incident
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} queries.IncidentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /incidents/{id} [get]
func (h *IncidentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.incidentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Incident not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List rental incidents
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {array} queries.IncidentView
// @Failure 400 {object} map[string]string
// @Router /rentals/{id}/incidents [get]
func (h *IncidentHandler) ListByRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.incidentQueries.ListByRental(c.Request.Context(), rentalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
