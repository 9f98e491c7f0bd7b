package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// redisChannel fans monitor entries out across instances so every
// connected admin console sees the same log feed.
const redisChannel = "monitor:logs:broadcast"

// Hub fans monitor log entries out to connected websocket clients.
type Hub struct {
	redis   *redis.Client
	clients map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Send chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register() *Client {
	client := &Client{
		Send: make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients, client)
	close(client.Send)
}

// Broadcast delivers the payload to local clients and, when redis is
// configured, publishes it for other instances. Slow clients are
// skipped rather than blocked on.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
	h.mu.RUnlock()

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel, payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.mu.RLock()
		for client := range h.clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
		h.mu.RUnlock()
	}
}
