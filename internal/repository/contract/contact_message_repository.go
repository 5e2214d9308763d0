package contract

import (
	"context"

	"solar-catalog-be/internal/entity"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	// FindAll returns newest first.
	FindAll(ctx context.Context, limit, skip int) ([]*entity.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}
