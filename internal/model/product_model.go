package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	Id                uuid.UUID                             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string                                `gorm:"type:varchar(255);not null"`
	Slug              string                                `gorm:"type:varchar(255);not null;index"`
	Description       string                                `gorm:"type:text;not null"`
	SeriesId          uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Series            *Series                               `gorm:"foreignKey:SeriesId;constraint:OnDelete:RESTRICT"`
	Features          datatypes.JSONSlice[string]           `gorm:"not null"`
	Specifications    datatypes.JSONType[map[string]string] `gorm:"not null"`
	Images            datatypes.JSONSlice[string]           `gorm:"not null"`
	ThumbnailImage    string                                `gorm:"type:text;not null;default:''"`
	ThumbnailPublicId string                                `gorm:"type:varchar(255);not null;default:''"`
	DeliveryInfo      string                                `gorm:"type:text;not null;default:''"`
	WarrantyInfo      string                                `gorm:"type:text;not null;default:''"`
	Price             *float64                              `gorm:"type:numeric(14,2)"`
	Order             int                                   `gorm:"column:display_order;not null;default:0;index"`
	// No default tag: gorm would otherwise replace an explicit false with it.
	Active            bool                                  `gorm:"not null;index"`
	CreatedAt         time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt         time.Time                             `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
