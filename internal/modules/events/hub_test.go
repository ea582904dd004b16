package events

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_NoClients(t *testing.T) {
	hub := NewHub()
	// must not block or panic with nobody listening
	hub.Publish("booking.created", map[string]any{"id": 1})
	assert.Equal(t, 0, hub.ClientCount())
}

func TestSubscribeAndPublish(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	handler := NewHandler(hub)

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// registration happens in the server goroutine after the upgrade
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish("loan.opened", map[string]any{"book_id": 1})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg Envelope
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "loan.opened", msg.Event)
	assert.False(t, msg.At.IsZero())
}

func TestPublish_ConcurrentPublishers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	handler := NewHandler(hub)

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	// writes to one conn are serialized, so parallel publishers must
	// still produce whole, decodable frames
	const publishers = 8
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Publish("booking.created", map[string]any{"seq": 1})
		}()
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	for i := 0; i < publishers; i++ {
		var msg Envelope
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "booking.created", msg.Event)
	}
	assert.Equal(t, 1, hub.ClientCount())
}

func TestPublish_DropsClosedClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	handler := NewHandler(hub)

	router := gin.New()
	handler.RegisterRoutes(router.Group(""))

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	// the read loop notices the close and unregisters the client
	require.Eventually(t, func() bool {
		hub.Publish("book.state_changed", nil)
		return hub.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}
