package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/shared/logger"
)

func setupFeedServer(t *testing.T, hub *TicketHub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func waitForClients(t *testing.T, hub *TicketHub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, hub.ClientCount())
}

func TestTicketHub_BroadcastsTicketCreated(t *testing.T) {
	hub := NewTicketHub(logger.NewLogger())
	conn := setupFeedServer(t, hub)
	waitForClients(t, hub, 1)

	hub.TicketCreated(&dto.TicketDTO{ID: 7, Summary: "kaldırımda çukur"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg FeedMessage
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, "ticket_created", msg.Type)
	require.NotNil(t, msg.Payload)
	assert.Equal(t, uint(7), msg.Payload.ID)
	assert.Equal(t, "kaldırımda çukur", msg.Payload.Summary)
}

func TestTicketHub_RemovesDisconnectedClients(t *testing.T) {
	hub := NewTicketHub(logger.NewLogger())
	conn := setupFeedServer(t, hub)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Broadcasting with no clients must not block or panic.
	hub.TicketCreated(&dto.TicketDTO{ID: 8})
}
