package memory

import (
	"context"
	"time"

	"solar-catalog-be/internal/entity"

	"github.com/google/uuid"
)

type contactMessageRepository struct {
	store *Store
}

func (r *contactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	c := *message
	r.store.messages = append(r.store.messages, &c)
	return nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context, limit, skip int) ([]*entity.ContactMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Stored oldest first; walk backwards for newest first.
	result := []*entity.ContactMessage{}
	for i := len(r.store.messages) - 1 - skip; i >= 0; i-- {
		if limit > 0 && len(result) == limit {
			break
		}
		c := *r.store.messages[i]
		result = append(result, &c)
	}
	return result, nil
}

func (r *contactMessageRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.messages)), nil
}
