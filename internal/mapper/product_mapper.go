package mapper

import (
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/model"

	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	specs := p.Specifications.Data()
	if specs == nil {
		specs = map[string]string{}
	}

	return &entity.Product{
		Id:                p.Id,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		SeriesId:          p.SeriesId,
		Features:          nonNilStrings(p.Features),
		Specifications:    specs,
		Images:            nonNilStrings(p.Images),
		ThumbnailImage:    p.ThumbnailImage,
		ThumbnailPublicId: p.ThumbnailPublicId,
		DeliveryInfo:      p.DeliveryInfo,
		WarrantyInfo:      p.WarrantyInfo,
		Price:             p.Price,
		Order:             p.Order,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}

	return &model.Product{
		Id:                p.Id,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		SeriesId:          p.SeriesId,
		Features:          datatypes.JSONSlice[string](nonNilStrings(p.Features)),
		Specifications:    datatypes.NewJSONType(specs),
		Images:            datatypes.JSONSlice[string](nonNilStrings(p.Images)),
		ThumbnailImage:    p.ThumbnailImage,
		ThumbnailPublicId: p.ThumbnailPublicId,
		DeliveryInfo:      p.DeliveryInfo,
		WarrantyInfo:      p.WarrantyInfo,
		Price:             p.Price,
		Order:             p.Order,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
