package service

import (
	"testing"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
)

func TestToCarResponse(t *testing.T) {
	car := &model.Car{
		Model:          gorm.Model{ID: 7},
		ModelName:      "Trailhead",
		Price:          15000,
		Sales:          120,
		Segment:        model.SegmentSUV,
		ManufacturerID: 2,
		Manufacturer: model.Manufacturer{
			Model:   gorm.Model{ID: 2},
			Name:    "Volkswerk",
			Country: "Germany",
		},
		Photos: []model.Photo{
			{Model: gorm.Model{ID: 31}, Title: "front", ImageContentType: "image/png"},
		},
		Links: []model.Link{
			{Model: gorm.Model{ID: 44}, CarID: 7, Label: "brochure", URL: "https://example.com/trailhead"},
		},
	}

	t.Run("With relations", func(t *testing.T) {
		got := toCarResponse(car, true)

		if got.ID != 7 || got.ModelName != "Trailhead" || got.Segment != "SUV" {
			t.Errorf("Unexpected base fields: %+v", got)
		}
		if got.Manufacturer == nil || got.Manufacturer.Name != "Volkswerk" {
			t.Errorf("Expected manufacturer Volkswerk, got %+v", got.Manufacturer)
		}
		if len(got.Photos) != 1 || got.Photos[0].ID != 31 {
			t.Errorf("Expected one photo summary, got %+v", got.Photos)
		}
		if len(got.Links) != 1 || got.Links[0].URL != "https://example.com/trailhead" {
			t.Errorf("Expected one link, got %+v", got.Links)
		}
	})

	t.Run("List view skips relations", func(t *testing.T) {
		got := toCarResponse(car, false)

		if got.Manufacturer == nil {
			t.Error("Manufacturer should be kept in list view")
		}
		if len(got.Photos) != 0 || len(got.Links) != 0 {
			t.Errorf("Expected no media in list view, got %d photos, %d links",
				len(got.Photos), len(got.Links))
		}
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{name: "Exact multiple", total: 40, size: 20, want: 2},
		{name: "Partial last page", total: 41, size: 20, want: 3},
		{name: "Empty set", total: 0, size: 20, want: 0},
		{name: "Single record", total: 1, size: 20, want: 1},
		{name: "Degenerate size", total: 10, size: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalPages(tt.total, tt.size); got != tt.want {
				t.Errorf("Expected %d pages, got %d", tt.want, got)
			}
		})
	}
}

func TestCarCacheKey(t *testing.T) {
	if got := carCacheKey(42); got != "carstock:car:42" {
		t.Errorf("Unexpected cache key %q", got)
	}
}
