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

type LocationHandler struct {
	locationCommands commands.LocationCommands
	locationQueries  queries.LocationQueries
}

func NewLocationHandler(locationCommands commands.LocationCommands, locationQueries queries.LocationQueries) *LocationHandler {
	return &LocationHandler{
		locationCommands: locationCommands,
		locationQueries:  locationQueries,
	}
}

// @Summary Create location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.locationCommands.CreateLocation(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidEmployee):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Manager does not exist",
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

// @Summary List locations
// @Tags locations
// @Produce json
// @Param city query string false "Filter by city"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.LocationView
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	var (
		views []*queries.LocationView
		err   error
	)
	if city := c.Query("city"); city != "" {
		views, err = h.locationQueries.ListByCity(c.Request.Context(), city)
	} else {
		views, err = h.locationQueries.List(c.Request.Context(), limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get location
// @Description Get a location with its assigned employees
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} queries.LocationDetailView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.locationQueries.GetDetailByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Location not found")
		return
	}

	c.JSON(http.StatusOK, view)
}
