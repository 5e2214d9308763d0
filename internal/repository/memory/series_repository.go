package memory

import (
	"context"
	"time"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
)

type seriesRepository struct {
	store *Store
}

// conflicts must be called with the lock held.
func (r *seriesRepository) conflicts(series *entity.Series) bool {
	for _, existing := range r.store.series {
		if existing.Id == series.Id {
			continue
		}
		if existing.Name == series.Name || existing.Slug == series.Slug {
			return true
		}
	}
	return false
}

func (r *seriesRepository) Create(ctx context.Context, series *entity.Series) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if series.Id == uuid.Nil {
		series.Id = uuid.New()
	}
	if r.conflicts(series) {
		return contract.ErrDuplicate
	}
	now := time.Now()
	if series.CreatedAt.IsZero() {
		series.CreatedAt = now
	}
	series.UpdatedAt = now

	c := *series
	r.store.series = append(r.store.series, &c)
	return nil
}

func (r *seriesRepository) Update(ctx context.Context, series *entity.Series) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.conflicts(series) {
		return contract.ErrDuplicate
	}
	series.UpdatedAt = time.Now()
	c := *series
	for i, existing := range r.store.series {
		if existing.Id == series.Id {
			r.store.series[i] = &c
			return nil
		}
	}
	r.store.series = append(r.store.series, &c)
	return nil
}

func (r *seriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.products {
		if p.SeriesId == id {
			return contract.ErrReferenced
		}
	}
	for i, existing := range r.store.series {
		if existing.Id == id {
			r.store.series = append(r.store.series[:i], r.store.series[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *seriesRepository) find(match func(*entity.Series) bool) *entity.Series {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, existing := range r.store.series {
		if match(existing) {
			c := *existing
			return &c
		}
	}
	return nil
}

func (r *seriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	return r.find(func(s *entity.Series) bool { return s.Id == id }), nil
}

func (r *seriesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Series, error) {
	return r.find(func(s *entity.Series) bool { return s.Slug == slug }), nil
}

func (r *seriesRepository) FindByName(ctx context.Context, name string) (*entity.Series, error) {
	return r.find(func(s *entity.Series) bool { return s.Name == name }), nil
}

func (r *seriesRepository) FindAll(ctx context.Context) ([]*entity.Series, error) {
	r.store.mu.RLock()
	result := make([]*entity.Series, len(r.store.series))
	for i, existing := range r.store.series {
		c := *existing
		result[i] = &c
	}
	r.store.mu.RUnlock()

	sortByDisplayOrder(result,
		func(s *entity.Series) int { return s.Order },
		func(s *entity.Series) time.Time { return s.CreatedAt },
	)
	return result, nil
}
