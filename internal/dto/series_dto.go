package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSeriesRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

// UpdateSeriesRequest is a partial update: nil fields are left untouched.
type UpdateSeriesRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Image       *string   `json:"image"`
	Order       *int      `json:"order"`
}

type SeriesResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
