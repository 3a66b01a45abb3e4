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

type InsuranceHandler struct {
	insuranceCommands commands.InsuranceCommands
	insuranceQueries  queries.InsuranceQueries
}

func NewInsuranceHandler(insuranceCommands commands.InsuranceCommands, insuranceQueries queries.InsuranceQueries) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceCommands: insuranceCommands,
		insuranceQueries:  insuranceQueries,
	}
}

// @Summary Create insurance plan
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInsurancePlanRequest true "Insurance plan"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /insurance-plans [post]
func (h *InsuranceHandler) CreatePlan(c *gin.Context) {
	var req reqdto.CreateInsurancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.insuranceCommands.CreatePlan(c.Request.Context(), req.ToCommand())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List insurance plans
// @Tags insurance
// @Produce json
// @Param active query bool false "Only active plans"
// @Success 200 {array} queries.InsurancePlanView
// @Router /insurance-plans [get]
func (h *InsuranceHandler) ListPlans(c *gin.Context) {
	var (
		views []*queries.InsurancePlanView
		err   error
	)
	if c.Query("active") == "true" {
		views, err = h.insuranceQueries.ListActivePlans(c.Request.Context())
	} else {
		views, err = h.insuranceQueries.ListPlans(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get insurance plan
// @Tags insurance
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} queries.InsurancePlanView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /insurance-plans/{id} [get]
func (h *InsuranceHandler) GetPlan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.insuranceQueries.GetPlanByID(c.Request.Context(), id)
	if err != nil {
		respondReadError(c, err, "Insurance plan not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Attach insurance to rental
// @Description Attach a plan to a rental, snapshotting the premium
// @Tags insurance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.AttachInsuranceRequest true "Plan"
// @Success 201 {object} commands.AttachInsuranceResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/insurance [post]
func (h *InsuranceHandler) AttachToRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AttachInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.insuranceCommands.AttachToRental(c.Request.Context(), rentalID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInsurancePlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Insurance plan not found",
			})
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrInsurancePlanInactive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insurance plan is inactive",
			})
		case errors.Is(err, commands.ErrInsuranceAlreadyAttached):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Plan already attached to this rental",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary List rental insurance
// @Tags insurance
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {array} queries.RentalInsuranceView
// @Failure 400 {object} map[string]string
// @Router /rentals/{id}/insurance [get]
func (h *InsuranceHandler) ListByRental(c *gin.Context) {
	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.insuranceQueries.ListByRental(c.Request.Context(), rentalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
