package memory

import (
	"context"
	"time"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
)

type adminRepository struct {
	store *Store
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.admins {
		if existing.Email == admin.Email {
			return contract.ErrDuplicate
		}
	}
	if admin.Id == uuid.Nil {
		admin.Id = uuid.New()
	}
	now := time.Now()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	c := *admin
	r.store.admins = append(r.store.admins, &c)
	return nil
}

func (r *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	admin.UpdatedAt = time.Now()
	c := *admin
	for i, existing := range r.store.admins {
		if existing.Id == admin.Id {
			r.store.admins[i] = &c
			return nil
		}
	}
	r.store.admins = append(r.store.admins, &c)
	return nil
}

func (r *adminRepository) find(match func(*entity.Admin) bool) *entity.Admin {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, existing := range r.store.admins {
		if match(existing) {
			c := *existing
			return &c
		}
	}
	return nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return r.find(func(a *entity.Admin) bool { return a.Id == id }), nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.find(func(a *entity.Admin) bool { return a.Email == email }), nil
}

func (r *adminRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.find(func(a *entity.Admin) bool { return a.Email == email && a.IsActive }), nil
}
