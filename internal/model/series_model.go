package model

import (
	"time"

	"github.com/google/uuid"
)

type Series struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text;not null"`
	Image       string    `gorm:"type:text;not null;default:''"`
	Order       int       `gorm:"column:display_order;not null;default:0;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Series) TableName() string {
	return "series"
}
