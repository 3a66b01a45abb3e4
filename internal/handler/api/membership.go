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

type MembershipHandler struct {
	membershipCommands commands.MembershipCommands
	membershipQueries  queries.MembershipQueries
}

func NewMembershipHandler(membershipCommands commands.MembershipCommands, membershipQueries queries.MembershipQueries) *MembershipHandler {
	return &MembershipHandler{
		membershipCommands: membershipCommands,
		membershipQueries:  membershipQueries,
	}
}

// @Summary Create membership profile
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.CreateMembershipRequest false "Profile"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/{id}/membership [post]
func (h *MembershipHandler) Create(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateMembershipRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	id, err := h.membershipCommands.CreateProfile(c.Request.Context(), commands.CreateMembershipRequest{
		CustomerID:    customerID,
		Tier:          req.Tier,
		PointsBalance: req.PointsBalance,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrDuplicateMembership):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer already has a membership profile",
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

// @Summary Get membership profile
// @Tags membership
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.MembershipProfileView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/membership [get]
func (h *MembershipHandler) Get(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.membershipQueries.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondReadError(c, err, "Membership profile not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Award points
// @Description Adjust the points balance; negative deltas are allowed
// @Tags membership
// @Accept json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.AwardPointsRequest true "Points delta"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/membership/points [post]
func (h *MembershipHandler) AwardPoints(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.membershipCommands.AwardPoints(c.Request.Context(), customerID, *req.Points); err != nil {
		h.respondMembershipWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record spending
// @Description Add to lifetime spending and bump the rental counter
// @Tags membership
// @Accept json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.RecordSpendingRequest true "Amount"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/membership/spending [post]
func (h *MembershipHandler) RecordSpending(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RecordSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.membershipCommands.RecordSpending(c.Request.Context(), customerID, req.AmountCents); err != nil {
		h.respondMembershipWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MembershipHandler) respondMembershipWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMembershipProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Membership profile not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
