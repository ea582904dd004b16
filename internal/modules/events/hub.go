package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Hub fans record-activity events out to connected dashboard clients.
// Publishing is best effort: a client that fails a write is dropped.
type Hub struct {
	mu     sync.RWMutex
	nextID int64
	conns  map[int64]*client
}

// client serializes writes to its connection; gorilla/websocket allows
// only one concurrent writer per conn.
type client struct {
	writeMu sync.Mutex
	conn    *websocket.Conn
}

type Envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
	At      time.Time   `json:"at"`
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]*client)}
}

func (h *Hub) register(conn *websocket.Conn) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.conns[h.nextID] = &client{conn: conn}
	return h.nextID
}

func (h *Hub) unregister(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.conns[id]; ok {
		_ = c.conn.Close()
		delete(h.conns, id)
	}
}

// Publish implements the EventSink interface the domain modules consume.
func (h *Hub) Publish(event string, payload any) {
	msg := Envelope{Event: event, Payload: payload, At: time.Now().UTC()}

	h.mu.RLock()
	ids := make([]int64, 0, len(h.conns))
	clients := make([]*client, 0, len(h.conns))
	for id, c := range h.conns {
		ids = append(ids, id)
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for i, c := range clients {
		c.writeMu.Lock()
		err := c.conn.WriteJSON(msg)
		c.writeMu.Unlock()
		if err != nil {
			h.unregister(ids[i])
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
