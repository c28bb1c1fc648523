package model

import (
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	ModelName      string  `gorm:"column:model_name;type:varchar(255);not null;index:idx_cars_model_name"`
	Price          float64 `gorm:"column:price;not null;index:idx_cars_price"`
	Sales          int     `gorm:"column:sales;default:0;index:idx_cars_sales"`
	Segment        Segment `gorm:"column:segment;type:varchar(20);not null;index:idx_cars_segment"`
	ManufacturerID uint    `gorm:"column:manufacturer_id;not null;index:idx_cars_manufacturer_id"`

	Manufacturer Manufacturer `gorm:"foreignKey:ManufacturerID"`
	Photos       []Photo      `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Links        []Link       `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}
