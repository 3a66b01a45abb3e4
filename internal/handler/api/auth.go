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
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	employeeQueries queries.EmployeeQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, employeeQueries queries.EmployeeQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		employeeQueries: employeeQueries,
	}
}

// @Summary Employee login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrEmployeeInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		EmployeeID:  result.EmployeeID,
		Role:        result.Role,
	})
}

// @Summary Employee logout
// @Description Logout current employee session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless JWT: the client discards the token.
	c.Status(http.StatusNoContent)
}

// @Summary Get current employee
// @Description Get the authenticated employee profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.EmployeeView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Employee not authenticated",
		})
		return
	}

	view, err := h.employeeQueries.GetByID(c.Request.Context(), employeeID)
	if err != nil {
		respondReadError(c, err, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, view)
}
