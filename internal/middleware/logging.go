package middleware

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/motorlane/carstock/internal/constants"
	"github.com/motorlane/carstock/pkg/logger"
)

// LoggingMiddleware logs HTTP requests and responses
func LoggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			logger.LogRequest(
				param.Method,
				param.Path,
				param.StatusCode,
				param.Latency.Milliseconds(),
				param.ClientIP,
				param.Request.UserAgent(),
			)

			if param.ErrorMessage != "" {
				logger.GetLogger().Error("Request error",
					zap.String("error", param.ErrorMessage),
					zap.String("method", param.Method),
					zap.String("path", param.Path),
					zap.String("client_ip", param.ClientIP),
					zap.Int("status_code", param.StatusCode),
					zap.Duration("latency", param.Latency),
				)
			}

			if param.Latency > 2*time.Second {
				logger.GetLogger().Warn("Slow request detected",
					zap.String("method", param.Method),
					zap.String("path", param.Path),
					zap.Duration("latency", param.Latency),
					zap.String("client_ip", param.ClientIP),
				)
			}

			return "" // Zap owns the output
		},
		Output: io.Discard,
	})
}

// RecoveryMiddleware recovers from panics and logs them
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.LogPanic(recovered)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					constants.BuildErrorResponse("Internal server error", nil))
			}
		}()
		c.Next()
	}
}
