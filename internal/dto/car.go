package dto

import "time"

type CreateCarRequest struct {
	// ID must be absent on create; a populated id is rejected.
	ID             uint    `json:"id" binding:"omitempty"`
	ModelName      string  `json:"model_name" binding:"required,min=1,max=255"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Sales          int     `json:"sales" binding:"omitempty,gte=0"`
	Segment        string  `json:"segment" binding:"required,oneof=SEDAN SUV COMPACT SPORT MINIVAN PICKUP"`
	ManufacturerID uint    `json:"manufacturer_id" binding:"required"`
}

type UpdateCarRequest struct {
	ModelName      string   `json:"model_name" binding:"omitempty,min=1,max=255"`
	Price          *float64 `json:"price" binding:"omitempty,gt=0"`
	Sales          *int     `json:"sales" binding:"omitempty,gte=0"`
	Segment        string   `json:"segment" binding:"omitempty,oneof=SEDAN SUV COMPACT SPORT MINIVAN PICKUP"`
	ManufacturerID uint     `json:"manufacturer_id" binding:"omitempty"`
}

type CarResponse struct {
	ID           uint                  `json:"id"`
	ModelName    string                `json:"model_name"`
	Price        float64               `json:"price"`
	Sales        int                   `json:"sales"`
	Segment      string                `json:"segment"`
	Manufacturer *ManufacturerResponse `json:"manufacturer,omitempty"`
	Photos       []PhotoSummary        `json:"photos,omitempty"`
	Links        []LinkResponse        `json:"links,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CarSearchFilter mirrors the six recognized search criteria, all optional
// and textual at the boundary. Validation happens in the filter compiler,
// not here.
type CarSearchFilter struct {
	Sales        string `form:"sales"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	Model        string `form:"model"`
	Segment      string `form:"segment"`
	Manufacturer string `form:"manufacturer"`
}
