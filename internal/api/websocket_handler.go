package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/service/pubsub"
	"github.com/kingrain94/rent-dashboard/internal/service/refresh"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 16
	websocketWriteTimeout          = 10 * time.Second

	dashboardLoadError = "Failed to load dashboard data"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
}

// DashboardSubscriber delivers dashboard invalidations per owner.
type DashboardSubscriber interface {
	Subscribe(ctx context.Context, ownerID string, callback func(pubsub.Invalidation)) error
	Unsubscribe(ownerID string)
	Close()
}

// FragmentRenderer renders the live panels of a dashboard summary.
type FragmentRenderer interface {
	DashboardFragments(summary *domain.DashboardSummary) (map[string]string, error)
}

// Client is one open dashboard. Its refresher lives exactly as long as the
// connection.
type Client struct {
	conn      *websocket.Conn
	ownerID   string
	send      chan []byte
	refresher *refresh.Refresher
	ctx       context.Context
	cancel    context.CancelFunc
}

type WebSocketHandler struct {
	*BaseHandler
	dashboard    DashboardService
	renderer     FragmentRenderer
	pubsub       DashboardSubscriber
	interval     time.Duration
	clients      map[*Client]bool
	register     chan *Client
	unregister   chan *Client
	mutex        sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	ownerClients map[string]int // Count of clients per owner
}

func NewWebSocketHandler(
	dashboard DashboardService,
	renderer FragmentRenderer,
	pubsub DashboardSubscriber,
	interval time.Duration,
	logger *logger.Logger,
) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		BaseHandler:  NewBaseHandler(logger),
		dashboard:    dashboard,
		renderer:     renderer,
		pubsub:       pubsub,
		interval:     interval,
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		ctx:          ctx,
		cancel:       cancel,
		ownerClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Live dashboard
// @Description Websocket stream of rendered dashboard panels, refreshed periodically and after every tenant change
// @Tags dashboard
// @Success 101
// @Failure 401 {object} dto.Error
// @Security BearerAuth
// @Router /dashboard/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	ownerID := h.OwnerID(c)
	if ownerID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "Authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade dashboard connection", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(h.ctx)
	client := &Client{
		conn:    conn,
		ownerID: ownerID,
		send:    make(chan []byte, websocketSendChannelBufferSize),
		ctx:     ctx,
		cancel:  cancel,
	}
	client.refresher = refresh.NewRefresher(
		func(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
			return h.dashboard.Summary(ctx, ownerID, now)
		},
		func(res refresh.Result) { h.deliver(client, res) },
		h.interval,
		h.logger,
	)

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		cancel()
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
	go client.refresher.Run(ctx)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.ownerClients[client.ownerID]++

			// Subscribe to the owner's channel if this is the first client
			if h.ownerClients[client.ownerID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.ownerID, h.handleInvalidation); err != nil {
					h.logger.Error("Failed to subscribe to dashboard invalidations", err, zap.String("user_id", client.ownerID))
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.cancel()

				h.ownerClients[client.ownerID]--
				if h.ownerClients[client.ownerID] == 0 {
					h.pubsub.Unsubscribe(client.ownerID)
					delete(h.ownerClients, client.ownerID)
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

// handleInvalidation refreshes every open dashboard of the invalidated owner.
func (h *WebSocketHandler) handleInvalidation(inv pubsub.Invalidation) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.ownerID == inv.OwnerID {
			client.refresher.Trigger()
		}
	}
}

// deliver runs under the refresher's lock, so it never blocks.
func (h *WebSocketHandler) deliver(client *Client, res refresh.Result) {
	message, err := json.Marshal(h.event(res))
	if err != nil {
		h.logger.Error("Failed to marshal dashboard event", err)
		return
	}

	select {
	case client.send <- message:
	default:
		h.logger.Warn("Dropping dashboard event for slow client",
			zap.String("user_id", client.ownerID),
			zap.Uint64("sequence", res.Sequence))
	}
}

func (h *WebSocketHandler) event(res refresh.Result) dto.DashboardEvent {
	event := dto.DashboardEvent{Sequence: res.Sequence, Stale: res.Stale}
	if res.Err != nil {
		event.Error = dashboardLoadError
	}
	if res.Summary == nil {
		return event
	}

	fragments, err := h.renderer.DashboardFragments(res.Summary)
	if err != nil {
		h.logger.Error("Failed to render dashboard fragments", err)
		event.Error = dashboardLoadError
		return event
	}
	generatedAt := res.Summary.GeneratedAt
	event.Fragments = fragments
	event.GeneratedAt = &generatedAt
	return event
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for {
		select {
		case message := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteTimeout))
			w, err := client.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-client.ctx.Done():
			client.conn.SetWriteDeadline(time.Now().Add(websocketWriteTimeout))
			client.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
			client.cancel()
		}
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("Unexpected close error for owner %s: %v", client.ownerID, err)
			}
			return
		}
	}
}
