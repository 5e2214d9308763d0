package mapper

import (
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/model"
)

type SeriesMapper struct{}

func NewSeriesMapper() *SeriesMapper {
	return &SeriesMapper{}
}

func (m *SeriesMapper) ToEntity(s *model.Series) *entity.Series {
	if s == nil {
		return nil
	}
	return &entity.Series{
		Id:          s.Id,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Image:       s.Image,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SeriesMapper) ToModel(s *entity.Series) *model.Series {
	if s == nil {
		return nil
	}
	return &model.Series{
		Id:          s.Id,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Image:       s.Image,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SeriesMapper) ToEntities(series []*model.Series) []*entity.Series {
	entities := make([]*entity.Series, len(series))
	for i, s := range series {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
