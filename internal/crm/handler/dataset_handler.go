package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/service"
	"github.com/skirdsawad/papertech-crm-poc/internal/crm/sse"
)

// heartbeatInterval keeps proxies from closing idle event streams.
var heartbeatInterval = 30 * time.Second

// DatasetHandler 数据集状态、重载与事件流
type DatasetHandler struct {
	svc *service.ReloadService
	hub *sse.Hub
}

func NewDatasetHandler(svc *service.ReloadService, hub *sse.Hub) *DatasetHandler {
	return &DatasetHandler{svc: svc, hub: hub}
}

// Info GET /dataset
func (h *DatasetHandler) Info(c *gin.Context) {
	Success(c, h.svc.Current())
}

// Reload POST /dataset/reload
func (h *DatasetHandler) Reload(c *gin.Context) {
	info, err := h.svc.Reload(c.Request.Context())
	if err != nil {
		c.Error(err)
		InternalError(c, "reload dataset: "+err.Error())
		return
	}
	Success(c, info)
}

// Events GET /events
func (h *DatasetHandler) Events(c *gin.Context) {
	clientID := uuid.New().String()
	client := &sse.Client{
		ID:     clientID,
		Events: make(chan sse.Event, 16),
	}
	h.hub.Register(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: {\"client_id\":\"%s\"}\n\n", sse.EventConnected, clientID))
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			h.hub.Unregister(clientID)
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: %s\n\n", event.EventType, event.Data))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}
