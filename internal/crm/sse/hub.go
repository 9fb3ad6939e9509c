package sse

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const (
	EventConnected     = "connected"
	EventDatasetReload = "dataset_reload"
)

// Event represents a Server-Sent Event
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client represents a connected SSE client
type Client struct {
	ID     string
	Events chan Event
}

// Hub manages all SSE client connections
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

// NewHub creates a new SSE Hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Debug("sse client registered", zap.String("client_id", client.ID), zap.Int("total", len(h.clients)))
}

// Unregister removes a client from the hub and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Debug("sse client unregistered", zap.String("client_id", clientID), zap.Int("total", len(h.clients)))
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all connected clients. Slow clients miss the
// event instead of blocking the sender.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("sse client buffer full, skipping event",
				zap.String("client_id", client.ID), zap.String("event", event.EventType))
		}
	}
}

// DatasetReload 数据集重新加载通知
type DatasetReload struct {
	Version  string `json:"version"`
	Source   string `json:"source"`
	LoadedAt string `json:"loaded_at"`
}

// PublishDatasetReload tells clients that cached views are stale.
func (h *Hub) PublishDatasetReload(payload DatasetReload) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("encode dataset_reload event", zap.Error(err))
		return
	}
	h.Broadcast(Event{EventType: EventDatasetReload, Data: string(data)})
	h.logger.Info("published dataset_reload", zap.String("version", payload.Version))
}
