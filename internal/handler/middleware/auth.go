package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental-api/internal/domain/employee"
	"car-rental-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxEmployeeIDKey   = "employee_id"
	ctxEmployeeRoleKey = "employee_role"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

var roleHierarchy = map[employee.Role]int{
	employee.RoleMechanic: 1,
	employee.RoleAgent:    2,
	employee.RoleManager:  3,
	employee.RoleAdmin:    4,
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxEmployeeIDKey, claims.EmployeeID)
		c.Set(ctxEmployeeRoleKey, employee.Role(claims.Role))
		c.Set("jwt_claims", map[string]any{
			"employee_id": claims.EmployeeID.String(),
			"role":        claims.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole employee.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetEmployeeRole(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func hasMinimumRole(role, minRole employee.Role) bool {
	level, exists := roleHierarchy[role]
	minLevel, minExists := roleHierarchy[minRole]
	return exists && minExists && level >= minLevel
}

func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	employeeID, exists := c.Get(ctxEmployeeIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := employeeID.(uuid.UUID)
	return id, ok
}

func GetEmployeeRole(c *gin.Context) (employee.Role, bool) {
	employeeRole, exists := c.Get(ctxEmployeeRoleKey)
	if !exists {
		return "", false
	}

	role, ok := employeeRole.(employee.Role)
	return role, ok
}
