package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
