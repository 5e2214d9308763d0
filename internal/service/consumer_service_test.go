package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"solar-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (b *recordingBroadcaster) Broadcast(payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, payload)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.payloads)
}

type recordingForwarder struct {
	mu    sync.Mutex
	types []string
	err   error
}

func (f *recordingForwarder) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = append(f.types, event.EventType())
	return f.err
}

func (f *recordingForwarder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.types)
}

func TestConsumerService_FanOut(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	broadcaster := &recordingBroadcaster{}
	forwarder := &recordingForwarder{err: errBoom}
	consumer := NewConsumerService(pubSub, "catalog_events", broadcaster, forwarder, nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(pubSub, "catalog_events", nopLogger())
	publisher.Publish(ctx, events.New(events.ProductCreated, map[string]interface{}{"slug": "rex-400w-panel"}))

	require.Eventually(t, func() bool { return broadcaster.count() == 1 && forwarder.count() == 1 }, time.Second, 10*time.Millisecond)

	var envelope events.Envelope
	require.NoError(t, json.Unmarshal(broadcaster.payloads[0], &envelope))
	assert.Equal(t, events.ProductCreated, envelope.Type)
	assert.Equal(t, []string{events.ProductCreated}, forwarder.types)
}

func TestConsumerService_SkipsUndecodable(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	broadcaster := &recordingBroadcaster{}
	consumer := NewConsumerService(pubSub, "catalog_events", broadcaster, nil, nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, pubSub.Publish("catalog_events", message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	NewPublisherService(pubSub, "catalog_events", nopLogger()).
		Publish(ctx, events.New(events.SeriesDeleted, map[string]interface{}{"slug": "titan"}))

	require.Eventually(t, func() bool { return broadcaster.count() == 1 }, time.Second, 10*time.Millisecond)
}
