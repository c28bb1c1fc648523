package model

import "gorm.io/gorm"

type Manufacturer struct {
	gorm.Model
	Name    string `gorm:"column:name;type:varchar(255);unique;not null;index:idx_manufacturers_name"`
	Country string `gorm:"column:country;type:varchar(100)"`
}
