package dto

import "time"

type CreateLinkRequest struct {
	CarID uint   `json:"car_id" binding:"required"`
	Label string `json:"label" binding:"omitempty,max=255"`
	URL   string `json:"url" binding:"required,url,max=2048"`
}

type UpdateLinkRequest struct {
	Label string `json:"label" binding:"omitempty,max=255"`
	URL   string `json:"url" binding:"omitempty,url,max=2048"`
}

type LinkResponse struct {
	ID        uint      `json:"id"`
	CarID     uint      `json:"car_id"`
	Label     string    `json:"label,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
