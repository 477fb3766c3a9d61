package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service/pubsub"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler streams a tenant's audit logs over /logs/stream.
// Each connection subscribes to its tenant's broker channel, so a
// client only ever sees logs from its own tenant.
type WebSocketHandler struct {
	clients    map[*Client]bool
	cancels    map[*Client]func()
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
	broker     *pubsub.Broker
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewWebSocketHandler(broker *pubsub.Broker, logger *logger.Logger) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:    make(map[*Client]bool),
		cancels:    make(map[*Client]func()),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		broker:     broker,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// Set by the auth middleware; a stream without a tenant is refused.
	tenantID, exists := c.Get(string(utils.TenantIDKey))
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no tenant in token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenantID.(string),
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.cancels[client] = h.broker.Subscribe(client.tenantID, func(log *dto.AuditLogResponse) {
				h.deliver(client, log)
			})
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.drop(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
}

func (h *WebSocketHandler) deliver(client *Client, log *dto.AuditLogResponse) {
	message, err := json.Marshal(log)
	if err != nil {
		h.logger.Errorf("Error marshaling log: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if !h.clients[client] {
		return
	}
	select {
	case client.send <- message:
	default:
		// Slow consumer; drop it rather than block the broker.
		h.drop(client)
	}
}

// drop must be called with the mutex held.
func (h *WebSocketHandler) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	if cancel := h.cancels[client]; cancel != nil {
		cancel()
		delete(h.cancels, client)
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.tenantID, err)
			}
			break
		}

		// Clients are read-only consumers; anything they send is just logged.
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.tenantID, string(message))
		}
	}
}
