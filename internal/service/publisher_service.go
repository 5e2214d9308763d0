package service

import (
	"context"

	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService puts catalog events on the in-process bus. Publishing is
// best-effort: a failure is logged and never fails the mutation.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
}

type publisherService struct {
	publisher message.Publisher
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topicName string, logger logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
		logger:    logger,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) {
	payload, err := events.Marshal(event)
	if err != nil {
		s.logger.Error("EVENTS", "Failed to encode event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}
}
