package memory

import (
	"context"
	"time"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
)

type productRepository struct {
	store *Store
}

// seriesExists must be called with the lock held.
func (r *productRepository) seriesExists(id uuid.UUID) bool {
	for _, s := range r.store.series {
		if s.Id == id {
			return true
		}
	}
	return false
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.seriesExists(product.SeriesId) {
		return contract.ErrReferenced
	}
	if product.Id == uuid.Nil {
		product.Id = uuid.New()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	r.store.products = append(r.store.products, product.Clone())
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.seriesExists(product.SeriesId) {
		return contract.ErrReferenced
	}
	product.UpdatedAt = time.Now()
	for i, existing := range r.store.products {
		if existing.Id == product.Id {
			r.store.products[i] = product.Clone()
			return nil
		}
	}
	r.store.products = append(r.store.products, product.Clone())
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.products {
		if existing.Id == id {
			r.store.products = append(r.store.products[:i], r.store.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, existing := range r.store.products {
		if existing.Id == id {
			return existing.Clone(), nil
		}
	}
	return nil, nil
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, existing := range r.store.products {
		if existing.Slug == slug {
			return existing.Clone(), nil
		}
	}
	return nil, nil
}

func (r *productRepository) matching(filter contract.ProductFilter) []*entity.Product {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*entity.Product
	for _, p := range r.store.products {
		if filter.SeriesId != nil && p.SeriesId != *filter.SeriesId {
			continue
		}
		if !filter.IncludeInactive && !p.Active {
			continue
		}
		result = append(result, p.Clone())
	}
	return result
}

func (r *productRepository) FindAll(ctx context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	result := r.matching(filter)
	sortByDisplayOrder(result,
		func(p *entity.Product) int { return p.Order },
		func(p *entity.Product) time.Time { return p.CreatedAt },
	)

	if filter.Skip >= len(result) {
		return []*entity.Product{}, nil
	}
	result = result[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *productRepository) Count(ctx context.Context, filter contract.ProductFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *productRepository) CountBySeries(ctx context.Context, seriesId uuid.UUID) (int64, error) {
	return r.Count(ctx, contract.ProductFilter{SeriesId: &seriesId, IncludeInactive: true})
}
