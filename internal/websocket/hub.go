package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"solar-catalog-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel is the Redis pub/sub channel hub instances mirror catalog
// events on.
const ClusterChannel = "catalog_feed"

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

type Hub struct {
	// Registered clients map: AdminID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	// done is closed once Run returns.
	done chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance communication; nil when unavailable.
	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.AdminID] = append(h.clients[client.AdminID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"admin_id": client.AdminID.String()})

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()
		}
	}
}

// attach hands client to Run. It reports false once the hub has stopped.
func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// removeLocked drops client and closes its Send channel once. Callers hold mu.
func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.AdminID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.AdminID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.AdminID]) == 0 {
		delete(h.clients, client.AdminID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"admin_id": client.AdminID.String()})
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, clients := range h.clients {
		for _, c := range clients {
			close(c.Send)
		}
		delete(h.clients, id)
	}
}

// Broadcast sends an event envelope to every connected admin session and
// mirrors it to the other instances through Redis.
func (h *Hub) Broadcast(payload []byte) {
	h.deliverLocal(payload)

	if h.rdb != nil {
		data, _ := json.Marshal(clusterMessage{Origin: h.instanceID, Message: payload})
		if err := h.rdb.Publish(context.Background(), ClusterChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to mirror event to Redis", map[string]interface{}{"error": err.Error()})
		}
	}
}

// deliverLocal drops clients whose buffer is full rather than blocking.
func (h *Hub) deliverLocal(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var slow []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- payload:
			default:
				slow = append(slow, client)
			}
		}
	}
	for _, client := range slow {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"admin_id": client.AdminID.String()})
		h.removeLocked(client)
	}
}

// ClientCount reports the number of live sessions on this instance.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		// Our own publications were already delivered locally.
		if payload.Origin == h.instanceID {
			continue
		}
		h.deliverLocal(payload.Message)
	}
}
