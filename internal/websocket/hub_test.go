package websocket

import (
	"context"
	"testing"
	"time"

	"solar-catalog-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestHub_BroadcastReachesEverySession(t *testing.T) {
	hub := startHub(t)
	admin := uuid.New()

	a := &Client{Hub: hub, AdminID: admin, Send: make(chan []byte, 4)}
	b := &Client{Hub: hub, AdminID: admin, Send: make(chan []byte, 4)}
	c := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte, 4)}
	for _, cl := range []*Client{a, b, c} {
		require.True(t, hub.attach(cl))
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"product.created"}`))

	for _, cl := range []*Client{a, b, c} {
		select {
		case msg := <-cl.Send:
			assert.JSONEq(t, `{"type":"product.created"}`, string(msg))
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)

	slow := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.attach(slow))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast([]byte("1"))
	hub.Broadcast([]byte("2"))

	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, "1", string(<-slow.Send))
	_, open := <-slow.Send
	assert.False(t, open)

	// Unregistering an already dropped client is a no-op.
	hub.detach(slow)
	hub.Broadcast([]byte("3"))
}

func TestHub_AttachAndDetachAfterStop(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	live := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.attach(live))

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	_, open := <-live.Send
	assert.False(t, open)

	late := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte, 1)}
	returned := make(chan bool, 1)
	go func() {
		ok := hub.attach(late)
		hub.detach(live)
		returned <- ok
	}()

	select {
	case ok := <-returned:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("attach or detach blocked after the hub stopped")
	}
	assert.Equal(t, 0, hub.ClientCount())
}
