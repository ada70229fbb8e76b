package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"movielist/internal/middleware"
)

const (
	defaultOffset = 0
	defaultLimit  = 10
	maxLimit      = 100

	requestTimeout = 5 * time.Second
)

// parsePagination reads the offset/limit query parameters, falling back
// to the defaults on missing or malformed values and capping limit.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset = defaultOffset
	limit = defaultLimit

	if v, err := strconv.Atoi(c.DefaultQuery("offset", "")); err == nil && v >= 0 {
		offset = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

// parseIDParam parses a numeric path parameter. On failure it writes a
// 422 response and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": map[string]string{name: "must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}

// currentUserID returns the authenticated user's ID set by the auth
// middleware. False means the route was reached without authentication.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserIDKey)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	return id, true
}

// internalError records the underlying error for the request logger and
// responds with a generic message.
func internalError(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
