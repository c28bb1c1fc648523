package dto

import (
	"encoding/json"
	"time"
)

// CreatePhotoRequest carries the image as base64, matching the original
// browser client which encodes uploads before posting them.
type CreatePhotoRequest struct {
	CarID            uint            `json:"car_id" binding:"required"`
	Title            string          `json:"title" binding:"omitempty,max=255"`
	Image            string          `json:"image" binding:"required,base64"`
	ImageContentType string          `json:"image_content_type" binding:"required,max=100"`
	Meta             json.RawMessage `json:"meta" binding:"omitempty"`
}

type UpdatePhotoRequest struct {
	Title            string          `json:"title" binding:"omitempty,max=255"`
	Image            string          `json:"image" binding:"omitempty,base64"`
	ImageContentType string          `json:"image_content_type" binding:"omitempty,max=100"`
	Meta             json.RawMessage `json:"meta" binding:"omitempty"`
}

type PhotoResponse struct {
	ID               uint            `json:"id"`
	CarID            uint            `json:"car_id"`
	Title            string          `json:"title,omitempty"`
	Image            string          `json:"image,omitempty"`
	ImageContentType string          `json:"image_content_type,omitempty"`
	Meta             json.RawMessage `json:"meta,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PhotoSummary omits the image payload for embedding in car responses.
type PhotoSummary struct {
	ID               uint   `json:"id"`
	Title            string `json:"title,omitempty"`
	ImageContentType string `json:"image_content_type,omitempty"`
}
