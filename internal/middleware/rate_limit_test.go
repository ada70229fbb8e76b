package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"movielist/internal/config"
)

func limitedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimiter(cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	router := limitedRouter(&config.Config{LimiterEnabled: true, LimiterRPS: 2, LimiterBurst: 4})

	for i := 0; i < 4; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	router := limitedRouter(&config.Config{LimiterEnabled: true, LimiterRPS: 2, LimiterBurst: 4})

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_Disabled(t *testing.T) {
	router := limitedRouter(&config.Config{LimiterEnabled: false, LimiterRPS: 1, LimiterBurst: 1})

	for i := 0; i < 10; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
