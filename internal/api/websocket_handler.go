package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/service/pubsub"
	"github.com/capitalizeai/scoring-api/internal/utils"
	"github.com/capitalizeai/scoring-api/pkg/logger"
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
	conn  *websocket.Conn
	orgID string
	send  chan []byte
}

type WebSocketHandler struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
	pubsub     *pubsub.RedisPubSub
	ctx        context.Context
	cancel     context.CancelFunc
	orgClients map[string]int // Count of clients per organization
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
		pubsub:     pubsub,
		ctx:        ctx,
		cancel:     cancel,
		orgClients: make(map[string]int),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// Get org ID from context (set by auth middleware). org scope is required
	orgID, exists := c.Get(string(utils.OrgIDKey))
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No organization ID found"})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	// Create and register new client
	client := &Client{
		conn:  conn,
		orgID: orgID.(string),
		send:  make(chan []byte, websocketSendChannelBufferSize),
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
			h.orgClients[client.orgID]++

			// Subscribe to the org's channel if this is the first client
			if h.orgClients[client.orgID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.orgID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to org %s: %v", client.orgID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				// Decrement org client count
				h.orgClients[client.orgID]--

				// Unsubscribe if no more clients for this org
				if h.orgClients[client.orgID] == 0 {
					h.pubsub.Unsubscribe(client.orgID)
					delete(h.orgClients, client.orgID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage handles messages received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(scoring *dto.ScoringRequestResponse) {
	message, err := json.Marshal(scoring)
	if err != nil {
		h.logger.Errorf("Error marshaling scoring: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.orgID == scoring.OrgID {
			select {
			case client.send <- message:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.orgClients[client.orgID]--

				// Unsubscribe if no more clients for this org
				if h.orgClients[client.orgID] == 0 {
					h.pubsub.Unsubscribe(client.orgID)
					delete(h.orgClients, client.orgID)
				}
			}
		}
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
				h.logger.Warnf("Unexpected close error for client %s: %v", client.orgID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.orgID, err)
			}
			break
		}

		// Handle any actual messages from client (though we don't expect any)
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.orgID, string(message))
		}
	}
}

// BroadcastScoring publishes a completed scoring so every instance's hub
// can fan it out to that organization's clients
func (h *WebSocketHandler) BroadcastScoring(scoring *dto.ScoringRequestResponse) {
	if err := h.pubsub.Publish(h.ctx, scoring); err != nil {
		h.logger.Errorf("Failed to publish scoring: %v", err)
	}
}
