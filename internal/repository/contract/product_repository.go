package contract

import (
	"context"

	"solar-catalog-be/internal/entity"

	"github.com/google/uuid"
)

// ProductFilter narrows product listings. A zero Limit means no limit.
type ProductFilter struct {
	SeriesId        *uuid.UUID
	IncludeInactive bool
	Limit           int
	Skip            int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	CountBySeries(ctx context.Context, seriesId uuid.UUID) (int64, error)
}
