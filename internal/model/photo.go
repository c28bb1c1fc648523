package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Photo struct {
	gorm.Model
	CarID            uint           `gorm:"column:car_id;not null;index:idx_photos_car_id"`
	Title            string         `gorm:"column:title;type:varchar(255)"`
	Image            []byte         `gorm:"column:image;type:bytea"`
	ImageContentType string         `gorm:"column:image_content_type;type:varchar(100)"`
	Meta             datatypes.JSON `gorm:"column:meta;type:jsonb;default:'{}'::jsonb"`
}
