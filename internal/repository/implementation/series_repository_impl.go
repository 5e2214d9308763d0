package implementation

import (
	"context"
	"errors"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/mapper"
	"solar-catalog-be/internal/model"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeriesRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SeriesMapper
}

func NewSeriesRepository(db *gorm.DB) contract.SeriesRepository {
	return &SeriesRepositoryImpl{
		db:     db,
		mapper: mapper.NewSeriesMapper(),
	}
}

func (r *SeriesRepositoryImpl) Create(ctx context.Context, series *entity.Series) error {
	m := r.mapper.ToModel(series)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*series = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeriesRepositoryImpl) Update(ctx context.Context, series *entity.Series) error {
	m := r.mapper.ToModel(series)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err)
	}
	*series = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeriesRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Series{}).Error)
}

func (r *SeriesRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Series, error) {
	var m model.Series
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SeriesRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *SeriesRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Series, error) {
	return r.findOne(ctx, specification.BySlug{Slug: slug})
}

func (r *SeriesRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Series, error) {
	return r.findOne(ctx, specification.ByName{Name: name})
}

func (r *SeriesRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Series, error) {
	var models []*model.Series
	query := applySpecifications(r.db.WithContext(ctx), specification.DisplayOrder{})
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
