package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"regboard-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// clusterChannel carries dashboard frames between instances. Locally produced
// frames travel through it too, so every client receives each frame exactly
// once no matter which instance produced it.
const clusterChannel = "cluster_events"

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fanout
	rdb *redis.Client

	// Dedicated logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start the Redis subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"session_id": client.SessionID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a frame to every connected client. With Redis configured
// the frame goes out on the cluster channel and comes back through the
// subscriber, on this instance included; without Redis it is delivered
// locally right away.
func (h *Hub) Broadcast(frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal frame", map[string]interface{}{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), clusterChannel, data).Err(); err == nil {
			return
		}
		h.logger.Warn("Hub", "Redis publish failed, delivering locally", nil)
	}
	h.deliverLocal(data)
}

func (h *Hub) deliverLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Buffer full. Drop the frame; the ping cycle clears the
			// connection if the client is really gone.
			h.logger.Warn("Hub", "Client send buffer full, dropping frame", map[string]interface{}{"session_id": client.SessionID})
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.deliverLocal([]byte(msg.Payload))
	}
}
