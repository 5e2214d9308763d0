package mapper

import (
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         entity.AdminRole(a.Role),
		IsActive:     a.IsActive,
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		IsActive:     a.IsActive,
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
