package service

import (
	"context"
	"strings"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/mailer"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/pkg/events"

	"github.com/google/uuid"
)

type IContactService interface {
	Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.CreateContactMessageResponse, error)
	List(ctx context.Context, query *dto.PageQuery) (*dto.ContactMessageListResponse, error)
}

type contactService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	logger           logger.ILogger
}

// NewContactService accepts a nil emailService when SMTP is not configured.
func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	logger logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *contactService) Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.CreateContactMessageResponse, error) {
	msg := entity.ContactMessage{
		Id:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     NormalizeEmail(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	if err := serverutils.ValidateRequest(&dto.CreateContactMessageRequest{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Message: msg.Message,
	}); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactMessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	s.publisherService.Publish(ctx, events.New(events.ContactReceived, map[string]interface{}{
		"id":    msg.Id.String(),
		"name":  msg.Name,
		"email": msg.Email,
	}))

	if s.emailService != nil {
		go func(m entity.ContactMessage) {
			if err := s.emailService.SendContactNotification(&m); err != nil {
				s.logger.Error("CONTACT", "Failed to send contact notification", map[string]interface{}{
					"message_id": m.Id.String(),
					"error":      err.Error(),
				})
			}
		}(msg)
	}

	return &dto.CreateContactMessageResponse{
		Message: "Message received",
		Id:      msg.Id,
	}, nil
}

func (s *contactService) List(ctx context.Context, query *dto.PageQuery) (*dto.ContactMessageListResponse, error) {
	limit, skip := NormalizePage(query.Limit, query.Skip)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ContactMessageRepository().FindAll(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	total, err := uow.ContactMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, &dto.ContactMessageResponse{
			Id:        m.Id,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.ContactMessageListResponse{
		Messages: result,
		Total:    total,
		Limit:    limit,
		Skip:     skip,
	}, nil
}
