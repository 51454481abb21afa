// Package http upgrades client connections and bridges rocket round events
// onto the WebSocket manager.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sunova/game_economy/internal/modules/gateway/ws"
	"github.com/sunova/game_economy/internal/modules/rocket/machine"
	"github.com/sunova/game_economy/pkg/logger"
)

// Handler handles WebSocket upgrade requests
type Handler struct {
	manager *ws.Manager
}

// NewHandler creates a new WebSocket handler
func NewHandler(manager *ws.Manager) *Handler {
	return &Handler{manager: manager}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// RegisterRoutes registers the WebSocket endpoint
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws", func(c *gin.Context) {
		h.HandleWebSocket(c.Writer, c.Request)
	})
}

// HandleWebSocket upgrades the connection and starts the pumps
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WebSocketContext(r)

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		logger.Warn(ctx).Msg("WebSocket request missing userId")
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("WebSocket upgrade failed")
		return
	}

	logger.Info(ctx).
		Str("user_id", userID).
		Str("remote_addr", r.RemoteAddr).
		Msg("WebSocket connection established")

	client := h.manager.Register(conn, userID)
	go client.WritePump()
	go client.ReadPump()
}

// BroadcastRocketEvents returns a rocket event handler that fans events out
// to every connected client as JSON. Register it on the rocket machine.
func BroadcastRocketEvents(manager *ws.Manager) machine.EventHandler {
	return func(event machine.GameEvent) {
		payload, err := json.Marshal(event)
		if err != nil {
			return
		}
		manager.Broadcast(payload)
	}
}
