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

type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminMapper
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminMapper(),
	}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *entity.Admin) error {
	m := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*admin = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminRepositoryImpl) Update(ctx context.Context, admin *entity.Admin) error {
	m := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err)
	}
	*admin = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	var m model.Admin
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *AdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email})
}

func (r *AdminRepositoryImpl) FindActiveByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email}, specification.IsActive{})
}
