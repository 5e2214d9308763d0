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

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func filterSpecifications(filter contract.ProductFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.SeriesId != nil {
		specs = append(specs, specification.BySeriesID{SeriesID: *filter.SeriesId})
	}
	if !filter.IncludeInactive {
		specs = append(specs, specification.ActiveOnly{})
	}
	return specs
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Omit("Series").Create(m).Error; err != nil {
		return translateError(err)
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Omit("Series").Save(m).Error; err != nil {
		return translateError(err)
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *ProductRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

// FindBySlug returns the first match; product slugs are not unique.
func (r *ProductRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return r.findOne(ctx, specification.BySlug{Slug: slug}, specification.OrderBy{Field: "created_at"})
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	specs := append(filterSpecifications(filter),
		specification.DisplayOrder{},
		specification.Pagination{Limit: filter.Limit, Offset: filter.Skip},
	)

	var models []*model.Product
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, filter contract.ProductFilter) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), filterSpecifications(filter)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepositoryImpl) CountBySeries(ctx context.Context, seriesId uuid.UUID) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specification.BySeriesID{SeriesID: seriesId})
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
