// Package realtime pushes committed record changes to websocket
// subscribers, standing in for the document store's snapshot stream:
// clients learn about new transactions, balances and parties without
// polling.
package realtime

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is CORS-guarded at the HTTP layer; the upgrade itself accepts
	// any origin the CORS middleware let through.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans committed change events out to connected websocket clients.
// Publish never blocks: clients that cannot keep up are dropped.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan portssvc.ChangeEvent
}

// NewHub creates a hub ready to accept subscribers.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

var _ portssvc.EventPublisher = (*Hub)(nil)

// Publish enqueues an event for every connected client. Full client queues
// are treated as dead connections.
func (h *Hub) Publish(evt portssvc.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- evt:
		default:
			h.dropLocked(c)
		}
	}
}

// Subscribe upgrades the request to a websocket and streams change events
// until the client disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{conn: conn, send: make(chan portssvc.ChangeEvent, 64)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("Stream subscriber connected", slog.String("remote", conn.RemoteAddr().String()))

	go h.writeLoop(c)
	go h.readLoop(c)
	return nil
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all subscribers.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.dropLocked(c)
	}
}

func (h *Hub) writeLoop(c *client) {
	for evt := range c.send {
		if err := c.conn.WriteJSON(evt); err != nil {
			h.mu.Lock()
			h.dropLocked(c)
			h.mu.Unlock()
			return
		}
	}
}

// readLoop drains the connection so pings and close frames are processed,
// and tears the client down when the peer goes away.
func (h *Hub) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.mu.Lock()
			h.dropLocked(c)
			h.mu.Unlock()
			return
		}
	}
}

// dropLocked removes a client; callers must hold h.mu.
func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}
