// Package realtime pushes ticket inserts to connected dashboard clients.
package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/shared/logger"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 16
)

// FeedMessage is the envelope pushed to clients.
type FeedMessage struct {
	Type    string         `json:"type"`
	Payload *dto.TicketDTO `json:"payload"`
}

// TicketHub fans ticket events out to every connected client. Slow clients
// are dropped rather than allowed to stall the broadcast.
type TicketHub struct {
	clients   map[*client]struct{}
	clientsMu sync.RWMutex
	logger    logger.Interface
}

type client struct {
	conn *websocket.Conn
	send chan *FeedMessage
}

var _ usecases.TicketFeed = (*TicketHub)(nil)

func NewTicketHub(log logger.Interface) *TicketHub {
	return &TicketHub{
		clients: make(map[*client]struct{}),
		logger:  log,
	}
}

// TicketCreated broadcasts a new ticket to every connected client.
func (h *TicketHub) TicketCreated(t *dto.TicketDTO) {
	msg := &FeedMessage{Type: "ticket_created", Payload: t}

	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Buffer full; the write pump will notice the closed channel
			// and tear the connection down.
			h.logger.Warnw("dropping slow feed client")
			go h.remove(c)
		}
	}
}

// Register takes ownership of an upgraded connection and serves it until the
// peer disconnects.
func (h *TicketHub) Register(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan *FeedMessage, sendBuffer),
	}

	h.clientsMu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.clientsMu.Unlock()

	h.logger.Infow("feed client connected", "clients", count)

	go c.writePump(h)
	go c.readPump(h)
}

// ClientCount returns the number of connected clients.
func (h *TicketHub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *TicketHub) remove(c *client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	h.clientsMu.Unlock()

	if ok {
		close(c.send)
		c.conn.Close()
	}
}

// writePump serializes all writes for one connection.
func (c *client) writePump(h *TicketHub) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.remove(c)
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the feed is one way. It exists so pong
// and close frames get processed.
func (c *client) readPump(h *TicketHub) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
