package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	employeeCommands commands.EmployeeCommands
	employeeQueries  queries.EmployeeQueries
}

func NewEmployeeHandler(employeeCommands commands.EmployeeCommands, employeeQueries queries.EmployeeQueries) *EmployeeHandler {
	return &EmployeeHandler{
		employeeCommands: employeeCommands,
		employeeQueries:  employeeQueries,
	}
}

// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.employeeCommands.CreateEmployee(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmployee):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, commands.ErrInvalidEmployee):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid employee data",
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

// @Summary List employees
// @Description List employees, optionally filtered by role, location or active status
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role"
// @Param location_id query string false "Location"
// @Param active query bool false "Only active employees"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.EmployeeView
// @Failure 400 {object} map[string]string
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	limit, offset := parseLimitOffset(c)

	var (
		views []*queries.EmployeeView
		err   error
	)
	switch {
	case c.Query("role") != "":
		views, err = h.employeeQueries.ListByRole(ctx, c.Query("role"))
	case c.Query("location_id") != "":
		var locationID uuid.UUID
		locationID, err = uuid.Parse(c.Query("location_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location_id format",
			})
			return
		}
		views, err = h.employeeQueries.ListByLocation(ctx, locationID)
	case c.Query("active") == "true":
		views, err = h.employeeQueries.ListActive(ctx, limit, offset)
	default:
		views, err = h.employeeQueries.List(ctx, limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} queries.EmployeeView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.employeeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, view)
}
