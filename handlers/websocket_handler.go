package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/Dosada05/league-simulator/hub"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler accepts connections from allowedOrigins, or from
// any origin when the list is empty.
func NewWebSocketHandler(h *hub.Hub, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
		logger: logger,
	}
}

// ServeWs subscribes the connection to the live league feed.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("failed to upgrade websocket connection", slog.Any("error", err))
		return
	}

	client := hub.NewClient(h.hub, conn, hub.LeagueRoom)
	select {
	case client.Hub.Register <- client:
	case <-client.Hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
