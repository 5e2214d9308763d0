package entity

import (
	"time"

	"github.com/google/uuid"
)

type Series struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Description string
	Image       string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
