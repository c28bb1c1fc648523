package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/motorlane/carstock/pkg/logger"
)

func rateLimitedRouter(maxRequest int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop()

	r := gin.New()
	r.Use(RateLimit(maxRequest, window))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit_AllowsWithinBudget(t *testing.T) {
	r := rateLimitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimit_RejectsOverBudget(t *testing.T) {
	r := rateLimitedRouter(2, time.Minute)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 after budget exhausted, got %d", w.Code)
	}
}

func TestRateLimit_SetsHeaders(t *testing.T) {
	r := rateLimitedRouter(5, time.Minute)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	if got := w.Header().Get("X-RateLimit-Limit"); got != "5" {
		t.Errorf("Expected limit header 5, got %q", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Errorf("Expected remaining header 4, got %q", got)
	}
	if w.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("Expected reset header to be set")
	}
}
