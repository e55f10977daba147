package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
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

//go:generate mockery --name ChangeSubscriber --output ../mocks
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, tenantID string, callback func(*dto.ChangeEvent)) error
	Unsubscribe(tenantID string)
	Close()
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler streams committed changes to the clients of each tenant.
// The first client of a tenant opens the tenant's subscription and the last
// one to leave closes it.
type WebSocketHandler struct {
	*BaseHandler
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.RWMutex
	subscriber    ChangeSubscriber
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int // Count of clients per tenant
}

func NewWebSocketHandler(base *BaseHandler, subscriber ChangeSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		BaseHandler:   base,
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		subscriber:    subscriber,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream entity changes
// @Description Upgrades to a websocket that receives a dto.ChangeEvent for every committed write in the caller's tenant
// @Tags changes
// @Param tenantId query string false "Tenant override (admin only)"
// @Success 101
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /changes/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenantID, ok := h.tenantScope(c)
	if !ok {
		return
	}

	// Upgrade writes its own error response on failure
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenantID.String(),
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++
			first := h.tenantClients[client.tenantID] == 1
			h.mutex.Unlock()

			// Subscribe to tenant's channel if this is the first client
			if first {
				if err := h.subscriber.Subscribe(h.ctx, client.tenantID, h.handleChangeEvent); err != nil {
					h.logger.Error("failed to subscribe to tenant changes", err, zap.String("tenant_id", client.tenantID))
				}
			}

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.subscriber.Close()
}

// handleChangeEvent fans an event out to the tenant's clients
func (h *WebSocketHandler) handleChangeEvent(event *dto.ChangeEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal change event", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.tenantID != event.TenantID {
			continue
		}
		select {
		case client.send <- message:
		default:
			// The client is not keeping up; drop it
			h.removeClient(client)
		}
	}
}

// removeClient must be called with the mutex held
func (h *WebSocketHandler) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] == 0 {
		h.subscriber.Unsubscribe(client.tenantID)
		delete(h.tenantClients, client.tenantID)
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		// Clients only listen; reading keeps close frames flowing
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("Unexpected close error for tenant %s: %v", client.tenantID, err)
			}
			return
		}
	}
}
