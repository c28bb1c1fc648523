package database

import (
	"github.com/motorlane/carstock/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Manufacturer{},
		&model.Car{},
		&model.Photo{},
		&model.Link{},
	)
}
