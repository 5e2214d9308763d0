package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id                uuid.UUID
	Name              string
	Slug              string
	Description       string
	SeriesId          uuid.UUID
	Features          []string
	Specifications    map[string]string
	Images            []string
	ThumbnailImage    string
	ThumbnailPublicId string
	DeliveryInfo      string
	WarrantyInfo      string
	Price             *float64
	Order             int
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone returns a deep copy so callers never share the collections.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Features = append([]string(nil), p.Features...)
	c.Images = append([]string(nil), p.Images...)
	if p.Specifications != nil {
		c.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			c.Specifications[k] = v
		}
	}
	if p.Price != nil {
		price := *p.Price
		c.Price = &price
	}
	return &c
}
