package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/constants"
	"github.com/motorlane/carstock/pkg/logger"
	"github.com/motorlane/carstock/pkg/redis"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

type HealthCheckResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

// HealthCheck probes the database and, when enabled, Redis. Redis being
// down degrades caching but not the service, so it never flips the overall
// status.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthCheckResponse{
		Status:    "healthy",
		Version:   constants.AppVersion,
		Timestamp: time.Now(),
		Checks:    make(map[string]HealthCheck),
	}

	dbStatus := h.checkDatabase(ctx)
	response.Checks["database"] = dbStatus
	if dbStatus.Status != "healthy" {
		response.Status = "unhealthy"
	}

	response.Checks["redis"] = h.checkRedis(ctx)

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	logger.GetLogger().Debug("Health check performed",
		zap.String("overall_status", response.Status),
		zap.Int("status_code", statusCode),
	)

	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) HealthCheck {
	sqlDB, err := h.db.DB()
	if err != nil {
		return HealthCheck{Status: "unhealthy", Message: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return HealthCheck{Status: "unhealthy", Message: err.Error()}
	}
	return HealthCheck{Status: "healthy"}
}

func (h *HealthHandler) checkRedis(ctx context.Context) HealthCheck {
	if !h.redisClient.IsEnabled() {
		return HealthCheck{Status: "disabled", Message: "caching disabled"}
	}
	if err := h.redisClient.Ping(ctx); err != nil {
		return HealthCheck{Status: "unhealthy", Message: err.Error()}
	}
	return HealthCheck{Status: "healthy"}
}
