package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
)

type seedCar struct {
	ModelName    string
	Price        float64
	Sales        int
	Segment      model.Segment
	Manufacturer string
}

func seedManufacturers() []model.Manufacturer {
	return []model.Manufacturer{
		{Name: "Toyoda", Country: "Japan"},
		{Name: "Volkswerk", Country: "Germany"},
		{Name: "Fordham", Country: "USA"},
	}
}

func seedCars() []seedCar {
	return []seedCar{
		{ModelName: "Corolla GT", Price: 21500, Sales: 1200, Segment: model.SegmentSedan, Manufacturer: "Toyoda"},
		{ModelName: "Highcrest", Price: 38900, Sales: 640, Segment: model.SegmentSUV, Manufacturer: "Toyoda"},
		{ModelName: "Golfstrom", Price: 24900, Sales: 980, Segment: model.SegmentCompact, Manufacturer: "Volkswerk"},
		{ModelName: "Tourwagen", Price: 45200, Sales: 310, Segment: model.SegmentMinivan, Manufacturer: "Volkswerk"},
		{ModelName: "Mustfang", Price: 55900, Sales: 450, Segment: model.SegmentSport, Manufacturer: "Fordham"},
		{ModelName: "Ranger XL", Price: 41700, Sales: 720, Segment: model.SegmentPickup, Manufacturer: "Fordham"},
	}
}

// Seed creates demo inventory data when the database is empty. Safe to run
// on every startup.
func Seed(db *gorm.DB) error {
	byName := make(map[string]uint)

	for _, m := range seedManufacturers() {
		var existing model.Manufacturer
		err := db.Where("name = ?", m.Name).First(&existing).Error
		if err == nil {
			byName[m.Name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		byName[m.Name] = m.ID
	}

	var carCount int64
	if err := db.Model(&model.Car{}).Count(&carCount).Error; err != nil {
		return err
	}
	if carCount > 0 {
		return nil
	}

	for _, c := range seedCars() {
		car := model.Car{
			ModelName:      c.ModelName,
			Price:          c.Price,
			Sales:          c.Sales,
			Segment:        c.Segment,
			ManufacturerID: byName[c.Manufacturer],
		}
		if err := db.Create(&car).Error; err != nil {
			return err
		}
	}

	return nil
}
