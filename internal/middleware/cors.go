package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlane/carstock/internal/constants"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers",
			constants.HeaderTotalCount+", "+constants.HeaderTotalPages+", "+constants.HeaderLink+", "+
				constants.HeaderAlert+", "+constants.HeaderAlertParams+", "+constants.HeaderError+", Location")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
