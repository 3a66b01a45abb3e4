package api

import (
	"net/http"
	"strconv"
	"time"

	"car-rental-api/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseLimitOffset(c *gin.Context) (limit, offset int32) {
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 32); err == nil {
		limit = int32(v)
	}
	if v, err := strconv.ParseInt(c.Query("offset"), 10, 32); err == nil {
		offset = int32(v)
	}
	return limit, offset
}

// parseDateQuery accepts a calendar date or a full timestamp.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": name + " query parameter required",
		})
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " date format",
		})
		return time.Time{}, false
	}
	return t, true
}

// respondReadError maps read-side repository errors onto 404/500.
func respondReadError(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
