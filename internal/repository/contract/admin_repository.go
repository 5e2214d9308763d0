package contract

import (
	"context"

	"solar-catalog-be/internal/entity"

	"github.com/google/uuid"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	FindActiveByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
