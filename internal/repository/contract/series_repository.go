package contract

import (
	"context"

	"solar-catalog-be/internal/entity"

	"github.com/google/uuid"
)

// Finders return (nil, nil) when nothing matches.
type SeriesRepository interface {
	Create(ctx context.Context, series *entity.Series) error
	Update(ctx context.Context, series *entity.Series) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Series, error)
	FindByName(ctx context.Context, name string) (*entity.Series, error)
	FindAll(ctx context.Context) ([]*entity.Series, error)
}
