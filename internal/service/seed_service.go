package service

import (
	"context"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ISeedService interface {
	SeedCatalog(ctx context.Context) (*dto.SeedCatalogResponse, error)
	SeedAdmin(ctx context.Context, email, password string) (*dto.SeedAdminResponse, error)
}

type seedService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSeedService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISeedService {
	return &seedService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// SeedCatalog inserts the demo catalog in one transaction. Series that
// already exist (by slug) are reused and existing products are skipped, so
// running it twice is harmless.
func (s *seedService) SeedCatalog(ctx context.Context) (*dto.SeedCatalogResponse, error) {
	result := &dto.SeedCatalogResponse{}
	err := unitofwork.Transact(ctx, s.uowFactory, func(uow unitofwork.UnitOfWork) error {
		seriesBySlug := make(map[string]uuid.UUID, len(demoSeries))

		for _, item := range demoSeries {
			existing, err := uow.SeriesRepository().FindBySlug(ctx, item.Slug)
			if err != nil {
				return err
			}
			if existing != nil {
				seriesBySlug[item.Slug] = existing.Id
				result.SeriesReused++
				continue
			}

			series := entity.Series{
				Id:          uuid.New(),
				Name:        item.Name,
				Slug:        item.Slug,
				Description: item.Description,
				Order:       item.Order,
				CreatedAt:   time.Now(),
			}
			if err := uow.SeriesRepository().Create(ctx, &series); err != nil {
				return err
			}
			seriesBySlug[item.Slug] = series.Id
			result.SeriesCreated++
		}

		for _, item := range demoProducts {
			existing, err := uow.ProductRepository().FindBySlug(ctx, item.Slug)
			if err != nil {
				return err
			}
			if existing != nil {
				result.ProductsSkipped++
				continue
			}

			product := entity.Product{
				Id:             uuid.New(),
				Name:           item.Name,
				Slug:           item.Slug,
				Description:    item.Description,
				SeriesId:       seriesBySlug[item.SeriesSlug],
				Features:       append([]string(nil), item.Features...),
				Specifications: copySpecifications(item.Specifications),
				Images:         []string{},
				ThumbnailImage: item.ThumbnailImage,
				DeliveryInfo:   item.DeliveryInfo,
				WarrantyInfo:   item.WarrantyInfo,
				Order:          item.Order,
				Active:         true,
				CreatedAt:      time.Now(),
			}
			if err := uow.ProductRepository().Create(ctx, &product); err != nil {
				return err
			}
			result.ProductsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SEED", "Demo catalog seeded", map[string]interface{}{
		"series_created":   result.SeriesCreated,
		"products_created": result.ProductsCreated,
		"products_skipped": result.ProductsSkipped,
	})
	return result, nil
}

func (s *seedService) SeedAdmin(ctx context.Context, email, password string) (*dto.SeedAdminResponse, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, serverutils.BadRequest("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SeedAdminResponse{Email: email, Created: false}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := entity.Admin{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.AdminRoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uow.AdminRepository().Create(ctx, &admin); err != nil {
		return nil, err
	}

	s.logger.Info("SEED", "Admin account created", map[string]interface{}{"email": email})
	return &dto.SeedAdminResponse{Email: email, Created: true}, nil
}

func copySpecifications(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
