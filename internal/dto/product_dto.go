package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// ImageUpload is an image file received with a product form.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

type ProductListQuery struct {
	SeriesId        *uuid.UUID
	IncludeInactive bool
	Limit           int
	Skip            int
}

type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Skip     int                `json:"skip"`
}

type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required"`
	Series         string            `json:"series" validate:"required"`
	Description    string            `json:"description" validate:"required"`
	Slug           string            `json:"slug"`
	DeliveryInfo   string            `json:"deliveryInfo"`
	WarrantyInfo   string            `json:"warrantyInfo"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
	Price          *float64          `json:"price"`
	Order          int               `json:"order"`
	Active         *bool             `json:"active"`
	Image          *ImageUpload      `json:"-"`
}

// UpdateProductRequest is a partial update. Nil pointers and nil
// collections are left untouched.
type UpdateProductRequest struct {
	Id             uuid.UUID         `json:"-"`
	Name           *string           `json:"name"`
	Series         *string           `json:"series"`
	Description    *string           `json:"description"`
	Slug           *string           `json:"slug"`
	DeliveryInfo   *string           `json:"deliveryInfo"`
	WarrantyInfo   *string           `json:"warrantyInfo"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
	Price          *float64          `json:"price"`
	Order          *int              `json:"order"`
	Active         *bool             `json:"active"`
	Image          *ImageUpload      `json:"-"`
}

type ProductResponse struct {
	Id             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Series         uuid.UUID         `json:"series"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
	ThumbnailImage string            `json:"thumbnailImage"`
	DeliveryInfo   string            `json:"deliveryInfo"`
	WarrantyInfo   string            `json:"warrantyInfo"`
	Price          *float64          `json:"price,omitempty"`
	Order          int               `json:"order"`
	Active         bool              `json:"active"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
