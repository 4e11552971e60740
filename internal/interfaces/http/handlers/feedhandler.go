package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"beyazmasa/internal/infrastructure/realtime"
	"beyazmasa/internal/shared/logger"
)

// FeedHandler upgrades authenticated clients onto the live ticket feed.
type FeedHandler struct {
	hub      *realtime.TicketHub
	upgrader websocket.Upgrader
	logger   logger.Interface
}

func NewFeedHandler(hub *realtime.TicketHub, allowedOrigins []string, log logger.Interface) *FeedHandler {
	return &FeedHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
		logger: log,
	}
}

// Feed handles GET /feed
func (h *FeedHandler) Feed(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("failed to upgrade to websocket", "error", err, "client_ip", c.ClientIP())
		return
	}

	h.hub.Register(conn)
}
