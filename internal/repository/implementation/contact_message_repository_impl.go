package implementation

import (
	"context"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/mapper"
	"solar-catalog-be/internal/model"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContactMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMessageMapper
}

func NewContactMessageRepository(db *gorm.DB) contract.ContactMessageRepository {
	return &ContactMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMessageMapper(),
	}
}

func (r *ContactMessageRepositoryImpl) Create(ctx context.Context, message *entity.ContactMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactMessageRepositoryImpl) FindAll(ctx context.Context, limit, skip int) ([]*entity.ContactMessage, error) {
	var models []*model.ContactMessage
	query := applySpecifications(r.db.WithContext(ctx),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContactMessageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
