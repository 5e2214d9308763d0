package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/pkg/assethost"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/pkg/events"
	"solar-catalog-be/pkg/slug"

	"github.com/google/uuid"
)

const (
	DefaultProductLimit = 100
	MaxProductLimit     = 500
)

type IProductService interface {
	List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductListResponse, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	uowFactory       unitofwork.RepositoryFactory
	uploader         assethost.Uploader
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	uploader assethost.Uploader,
	publisherService IPublisherService,
	logger logger.ILogger,
) IProductService {
	return &productService{
		uowFactory:       uowFactory,
		uploader:         uploader,
		publisherService: publisherService,
		logger:           logger,
	}
}

// NormalizePage clamps limit to (0, MaxProductLimit] with DefaultProductLimit
// for missing or zero values, and skip to >= 0.
func NormalizePage(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}
	if limit > MaxProductLimit {
		limit = MaxProductLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

func (s *productService) List(ctx context.Context, query *dto.ProductListQuery) (*dto.ProductListResponse, error) {
	limit, skip := NormalizePage(query.Limit, query.Skip)
	filter := contract.ProductFilter{
		SeriesId:        query.SeriesId,
		IncludeInactive: query.IncludeInactive,
		Limit:           limit,
		Skip:            skip,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uow.ProductRepository().Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}

	return &dto.ProductListResponse{
		Products: result,
		Total:    total,
		Limit:    limit,
		Skip:     skip,
	}, nil
}

func (s *productService) ShowBySlug(ctx context.Context, productSlug string) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindBySlug(ctx, slug.Normalize(productSlug))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.NotFound("Product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.NotFound("Product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, serverutils.BadRequest("name is required")
	}
	if strings.TrimSpace(req.Series) == "" {
		return nil, serverutils.BadRequest("series is required")
	}
	if description == "" {
		return nil, serverutils.BadRequest("description is required")
	}
	seriesId, err := uuid.Parse(strings.TrimSpace(req.Series))
	if err != nil {
		return nil, serverutils.BadRequest("Invalid series ID")
	}
	if err := validateImage(req.Image); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureSeries(ctx, uow, seriesId); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := entity.Product{
		Id:             uuid.New(),
		Name:           name,
		Slug:           slug.FromOptional(req.Slug, name),
		Description:    description,
		SeriesId:       seriesId,
		Features:       cleanList(req.Features),
		Specifications: cleanSpecifications(req.Specifications),
		Images:         cleanList(req.Images),
		DeliveryInfo:   strings.TrimSpace(req.DeliveryInfo),
		WarrantyInfo:   strings.TrimSpace(req.WarrantyInfo),
		Price:          req.Price,
		Order:          req.Order,
		Active:         active,
		CreatedAt:      time.Now(),
	}

	if req.Image != nil {
		uploaded, err := s.upload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		product.ThumbnailImage = uploaded.URL
		product.ThumbnailPublicId = uploaded.PublicID
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		s.discardAsset(ctx, product.ThumbnailPublicId)
		if errors.Is(err, contract.ErrReferenced) {
			return nil, serverutils.BadRequest("Series not found")
		}
		return nil, err
	}

	s.publisherService.Publish(ctx, events.New(events.ProductCreated, productEventData(&product)))
	return toProductResponse(&product), nil
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateImage(req.Image); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.NotFound("Product not found")
	}

	// Fields apply only when present and non-empty.
	if v, ok := nonEmpty(req.Name); ok {
		product.Name = v
	}
	if v, ok := nonEmpty(req.Description); ok {
		product.Description = v
	}
	if v, ok := nonEmpty(req.Slug); ok {
		product.Slug = slug.Normalize(v)
	}
	if v, ok := nonEmpty(req.DeliveryInfo); ok {
		product.DeliveryInfo = v
	}
	if v, ok := nonEmpty(req.WarrantyInfo); ok {
		product.WarrantyInfo = v
	}
	if v, ok := nonEmpty(req.Series); ok {
		seriesId, err := uuid.Parse(v)
		if err != nil {
			return nil, serverutils.BadRequest("Invalid series ID")
		}
		if err := s.ensureSeries(ctx, uow, seriesId); err != nil {
			return nil, err
		}
		product.SeriesId = seriesId
	}
	if features := cleanList(req.Features); len(features) > 0 {
		product.Features = features
	}
	if specs := cleanSpecifications(req.Specifications); len(specs) > 0 {
		product.Specifications = specs
	}
	if images := cleanList(req.Images); len(images) > 0 {
		product.Images = images
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.Order != nil {
		product.Order = *req.Order
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	previousPublicId := ""
	if req.Image != nil {
		uploaded, err := s.upload(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		previousPublicId = product.ThumbnailPublicId
		product.ThumbnailImage = uploaded.URL
		product.ThumbnailPublicId = uploaded.PublicID
	}

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		if req.Image != nil {
			s.discardAsset(ctx, product.ThumbnailPublicId)
		}
		if errors.Is(err, contract.ErrReferenced) {
			return nil, serverutils.BadRequest("Series not found")
		}
		return nil, err
	}

	s.discardAsset(ctx, previousPublicId)
	s.publisherService.Publish(ctx, events.New(events.ProductUpdated, productEventData(product)))
	return toProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return serverutils.NotFound("Product not found")
	}

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.discardAsset(ctx, product.ThumbnailPublicId)
	s.publisherService.Publish(ctx, events.New(events.ProductDeleted, productEventData(product)))
	return nil
}

func (s *productService) ensureSeries(ctx context.Context, uow unitofwork.UnitOfWork, seriesId uuid.UUID) error {
	series, err := uow.SeriesRepository().FindByID(ctx, seriesId)
	if err != nil {
		return err
	}
	if series == nil {
		return serverutils.BadRequest("Series not found")
	}
	return nil
}

func (s *productService) upload(ctx context.Context, image *dto.ImageUpload) (*assethost.UploadResult, error) {
	uploaded, err := s.uploader.Upload(ctx, image.Reader, image.Filename)
	if err != nil {
		if errors.Is(err, assethost.ErrNotConfigured) {
			return nil, serverutils.NewAppError(503, "Image uploads are not available", err)
		}
		return nil, serverutils.Internal("Failed to upload image", err)
	}
	return uploaded, nil
}

// discardAsset removes a hosted image; failures are only logged.
func (s *productService) discardAsset(ctx context.Context, publicId string) {
	if publicId == "" {
		return
	}
	if err := s.uploader.Delete(ctx, publicId); err != nil {
		s.logger.Warn("PRODUCT", "Failed to delete hosted image", map[string]interface{}{
			"public_id": publicId,
			"error":     err.Error(),
		})
	}
}

func validateImage(image *dto.ImageUpload) error {
	if image == nil {
		return nil
	}
	if image.ContentType != "" && !strings.HasPrefix(image.ContentType, "image/") {
		return serverutils.BadRequest("image must be an image file")
	}
	return nil
}

func nonEmpty(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*v)
	return trimmed, trimmed != ""
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cleanSpecifications(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(v)
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}

	return &dto.ProductResponse{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Series:         p.SeriesId,
		Features:       features,
		Specifications: specs,
		Images:         images,
		ThumbnailImage: p.ThumbnailImage,
		DeliveryInfo:   p.DeliveryInfo,
		WarrantyInfo:   p.WarrantyInfo,
		Price:          p.Price,
		Order:          p.Order,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func productEventData(p *entity.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":       p.Id.String(),
		"name":     p.Name,
		"slug":     p.Slug,
		"seriesId": p.SeriesId.String(),
		"active":   p.Active,
	}
}
