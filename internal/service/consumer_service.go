package service

import (
	"context"

	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// Broadcaster delivers raw event envelopes to connected admin sessions.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// EventForwarder relays events to an external bus such as NATS.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	broadcaster Broadcaster
	forwarder   EventForwarder
	logger      logger.ILogger
}

// NewConsumerService wires the catalog event fan-out. broadcaster and
// forwarder may be nil when the corresponding sink is unavailable.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	broadcaster Broadcaster,
	forwarder EventForwarder,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		broadcaster: broadcaster,
		forwarder:   forwarder,
		logger:      logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Undecodable messages are acked so they are not redelivered forever.
	defer msg.Ack()

	event, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Error("EVENTS", "Failed to decode event", map[string]interface{}{"error": err.Error()})
		return
	}

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(msg.Payload)
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, event); err != nil {
			cs.logger.Warn("EVENTS", "Failed to forward event to NATS", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}
