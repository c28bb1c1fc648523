package model

import "gorm.io/gorm"

type Link struct {
	gorm.Model
	CarID uint   `gorm:"column:car_id;not null;index:idx_links_car_id"`
	Label string `gorm:"column:label;type:varchar(255)"`
	URL   string `gorm:"column:url;type:varchar(2048);not null"`
}
