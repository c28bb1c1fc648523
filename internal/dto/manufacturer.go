package dto

import "time"

type CreateManufacturerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Country string `json:"country" binding:"omitempty,max=100"`
}

type UpdateManufacturerRequest struct {
	Name    string `json:"name" binding:"omitempty,min=1,max=255"`
	Country string `json:"country" binding:"omitempty,max=100"`
}

type ManufacturerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
