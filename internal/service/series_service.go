package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/pkg/events"
	"solar-catalog-be/pkg/slug"

	"github.com/google/uuid"
)

type ISeriesService interface {
	GetAll(ctx context.Context) ([]*dto.SeriesResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.SeriesResponse, error)
	Create(ctx context.Context, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, error)
	Update(ctx context.Context, req *dto.UpdateSeriesRequest) (*dto.SeriesResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type seriesService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewSeriesService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ISeriesService {
	return &seriesService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *seriesService) GetAll(ctx context.Context) ([]*dto.SeriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	series, err := uow.SeriesRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SeriesResponse, 0, len(series))
	for _, item := range series {
		result = append(result, toSeriesResponse(item))
	}
	return result, nil
}

func (s *seriesService) Show(ctx context.Context, id uuid.UUID) (*dto.SeriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	series, err := uow.SeriesRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, serverutils.NotFound("Series not found")
	}
	return toSeriesResponse(series), nil
}

func (s *seriesService) Create(ctx context.Context, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, serverutils.BadRequest("name is required")
	}
	if description == "" {
		return nil, serverutils.BadRequest("description is required")
	}

	series := entity.Series{
		Id:          uuid.New(),
		Name:        name,
		Slug:        slug.FromOptional(req.Slug, name),
		Description: description,
		Image:       strings.TrimSpace(req.Image),
		Order:       req.Order,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureUnique(ctx, uow.SeriesRepository(), &series); err != nil {
		return nil, err
	}

	if err := uow.SeriesRepository().Create(ctx, &series); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, serverutils.Conflict("Series name or slug already exists")
		}
		return nil, err
	}

	s.publisherService.Publish(ctx, events.New(events.SeriesCreated, seriesEventData(&series)))
	return toSeriesResponse(&series), nil
}

func (s *seriesService) Update(ctx context.Context, req *dto.UpdateSeriesRequest) (*dto.SeriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	series, err := uow.SeriesRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, serverutils.NotFound("Series not found")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, serverutils.BadRequest("name cannot be empty")
		}
		series.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, serverutils.BadRequest("description cannot be empty")
		}
		series.Description = description
	}
	if req.Slug != nil {
		normalized := slug.Normalize(*req.Slug)
		if normalized == "" {
			return nil, serverutils.BadRequest("slug cannot be empty")
		}
		series.Slug = normalized
	}
	if req.Image != nil {
		series.Image = strings.TrimSpace(*req.Image)
	}
	if req.Order != nil {
		series.Order = *req.Order
	}

	if err := s.ensureUnique(ctx, uow.SeriesRepository(), series); err != nil {
		return nil, err
	}

	if err := uow.SeriesRepository().Update(ctx, series); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, serverutils.Conflict("Series name or slug already exists")
		}
		return nil, err
	}

	s.publisherService.Publish(ctx, events.New(events.SeriesUpdated, seriesEventData(series)))
	return toSeriesResponse(series), nil
}

func (s *seriesService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	series, err := uow.SeriesRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if series == nil {
		return serverutils.NotFound("Series not found")
	}

	count, err := uow.ProductRepository().CountBySeries(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return serverutils.Conflict(fmt.Sprintf("Series still has %d product(s); move or delete them first", count))
	}

	if err := uow.SeriesRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrReferenced) {
			return serverutils.Conflict("Series still has products; move or delete them first")
		}
		return err
	}

	s.publisherService.Publish(ctx, events.New(events.SeriesDeleted, seriesEventData(series)))
	return nil
}

// ensureUnique checks name and slug against every other series.
func (s *seriesService) ensureUnique(ctx context.Context, repo contract.SeriesRepository, series *entity.Series) error {
	byName, err := repo.FindByName(ctx, series.Name)
	if err != nil {
		return err
	}
	if byName != nil && byName.Id != series.Id {
		return serverutils.Conflict("Series name already exists")
	}

	bySlug, err := repo.FindBySlug(ctx, series.Slug)
	if err != nil {
		return err
	}
	if bySlug != nil && bySlug.Id != series.Id {
		return serverutils.Conflict("Series slug already exists")
	}
	return nil
}

func toSeriesResponse(s *entity.Series) *dto.SeriesResponse {
	return &dto.SeriesResponse{
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

func seriesEventData(s *entity.Series) map[string]interface{} {
	return map[string]interface{}{
		"id":   s.Id.String(),
		"name": s.Name,
		"slug": s.Slug,
	}
}
