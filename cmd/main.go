package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	configs "github.com/motorlane/carstock/config"
	"github.com/motorlane/carstock/internal/handler"
	"github.com/motorlane/carstock/internal/repository"
	"github.com/motorlane/carstock/internal/router"
	"github.com/motorlane/carstock/internal/service"
	"github.com/motorlane/carstock/pkg/database"
	"github.com/motorlane/carstock/pkg/logger"
	"github.com/motorlane/carstock/pkg/redis"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	db, err := database.NewPostgresDB(config.Database)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		// Seed data may already exist; keep starting.
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	}

	// Repositories
	carRepo := repository.NewCarRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	redisClient := redis.NewClient(config, logger.GetLogger())
	defer redisClient.Close()

	// Services
	cacheService := service.NewCacheService(redisClient, config.Redis.CacheTTL)
	carService := service.NewCarService(carRepo, manufacturerRepo, cacheService)
	manufacturerService := service.NewManufacturerService(manufacturerRepo)
	photoService := service.NewPhotoService(photoRepo, carRepo, cacheService)
	linkService := service.NewLinkService(linkRepo, carRepo, cacheService)

	// Handlers
	carHandler := handler.NewCarHandler(carService)
	manufacturerHandler := handler.NewManufacturerHandler(manufacturerService)
	photoHandler := handler.NewPhotoHandler(photoService)
	linkHandler := handler.NewLinkHandler(linkService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	r := router.NewRouter(
		carHandler,
		manufacturerHandler,
		photoHandler,
		linkHandler,
		healthHandler,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
