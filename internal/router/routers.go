package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorlane/carstock/config"
	"github.com/motorlane/carstock/internal/handler"
	"github.com/motorlane/carstock/internal/middleware"
)

type Router struct {
	carHandler          *handler.CarHandler
	manufacturerHandler *handler.ManufacturerHandler
	photoHandler        *handler.PhotoHandler
	linkHandler         *handler.LinkHandler
	healthHandler       *handler.HealthHandler
	config              *config.Config
}

func NewRouter(
	car *handler.CarHandler,
	manufacturer *handler.ManufacturerHandler,
	photo *handler.PhotoHandler,
	link *handler.LinkHandler,
	health *handler.HealthHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		carHandler:          car,
		manufacturerHandler: manufacturer,
		photoHandler:        photo,
		linkHandler:         link,
		healthHandler:       health,
		config:              cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.config.RateLimit.Request, time.Duration(r.config.RateLimit.Duration)*time.Second))

			r.carRoutes(v1)
			r.manufacturerRoutes(v1)
			r.mediaRoutes(v1)
		}
	}

	return router
}
