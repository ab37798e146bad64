package live

import (
	"errors"
	"log"
	"sync"

	"taxiops/internal/metrics"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// Hub fans dashboard updates out to every connected subscriber.
type Hub struct {
	clients map[string]*Conn
	mu      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Conn)}
}

// Add registers a subscriber under its server-assigned id. Re-adding the
// same id closes and replaces the earlier connection.
func (h *Hub) Add(c *Conn) error {
	if c == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.clients[c.id]; ok {
		log.Printf("[WS] replacing connection id=%s", c.id)
		if err := existing.Close(); err != nil {
			log.Printf("[WS] close existing id=%s err=%v", c.id, err)
		}
	}
	h.clients[c.id] = c
	metrics.LiveSubscribers.Set(float64(len(h.clients)))
	return nil
}

// Delete closes and forgets a subscriber.
func (h *Hub) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[id]
	if !ok {
		return ErrConnIsNotFound
	}
	if err := c.Close(); err != nil {
		log.Printf("[WS] close id=%s err=%v", id, err)
	}
	delete(h.clients, id)
	metrics.LiveSubscribers.Set(float64(len(h.clients)))
	return nil
}

// Broadcast sends v to every subscriber and drops the ones that fail.
func (h *Hub) Broadcast(v any) {
	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.Send(v); err != nil {
			log.Printf("[WS] dropping id=%s err=%v", c.id, err)
			_ = h.remove(c)
		}
	}
}

// remove deletes c only if it is still the registered connection for its id.
func (h *Hub) remove(c *Conn) error {
	h.mu.Lock()
	current, ok := h.clients[c.id]
	if ok && current == c {
		delete(h.clients, c.id)
		metrics.LiveSubscribers.Set(float64(len(h.clients)))
	}
	h.mu.Unlock()
	return c.Close()
}

// Remove is called by the handler when a subscriber's read loop ends.
func (h *Hub) Remove(c *Conn) {
	if c == nil {
		return
	}
	_ = h.remove(c)
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		_ = h.Delete(c.id)
	}
	log.Printf("[WS] all dashboard connections closed")
}
