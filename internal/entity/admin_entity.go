package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	AdminRoleAdmin AdminRole = "admin"
)

type Admin struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	Role         AdminRole
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
