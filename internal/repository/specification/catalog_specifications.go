package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type BySeriesID struct {
	SeriesID uuid.UUID
}

func (s BySeriesID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("series_id = ?", s.SeriesID)
}

// ActiveOnly hides products flagged inactive from public listings.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// DisplayOrder sorts by the admin-defined order, oldest first on ties.
type DisplayOrder struct{}

func (s DisplayOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at ASC")
}
