package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/bikefight/bikefight.github.io/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn is the slice of *websocket.Conn the hub needs. Tests register fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type client struct {
	participantID string
	connID        string
}

// Hub is the registry of live connections, each tagged with the participant
// id the client asserted at connect time. The id is not verified against
// anything; any connection can claim any participant. More than one
// connection may carry the same id (several tabs or devices) and all of them
// receive directed messages for it.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]client
}

func NewHub() *Hub {
	return &Hub{conns: make(map[Conn]client)}
}

func (h *Hub) Register(conn Conn, participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := client{participantID: participantID, connID: uuid.NewString()}
	h.conns[conn] = c
	metrics.ConnectionsActive.Inc()
	log.Printf("ws: conn %s registered for participant %s (total: %d)", c.connID, participantID, len(h.conns))
}

// Unregister is idempotent; disconnect and error paths may both reach it.
func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.conns[conn]
	if !ok {
		return
	}
	delete(h.conns, conn)
	conn.Close()
	metrics.ConnectionsActive.Dec()
	log.Printf("ws: conn %s unregistered (total: %d)", c.connID, len(h.conns))
}

// BroadcastAll sends v to every live connection. A connection that fails the
// write is dropped and the rest still get the message.
func (h *Hub) BroadcastAll(v interface{}) {
	h.send(v, func(client) bool { return true })
}

// SendTo sends v to every connection tagged with participantID. Zero matches
// is not an error.
func (h *Hub) SendTo(participantID string, v interface{}) {
	h.send(v, func(c client) bool { return c.participantID == participantID })
}

// send holds the lock for the whole fan-out: gorilla conns do not allow
// concurrent writers, so serializing here is what preserves per-connection
// message order.
func (h *Hub) send(v interface{}, match func(client) bool) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, c := range h.conns {
		if !match(c) {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error on conn %s: %v", c.connID, err)
			metrics.BroadcastErrors.Inc()
			conn.Close()
			delete(h.conns, conn)
			metrics.ConnectionsActive.Dec()
		}
	}
}
