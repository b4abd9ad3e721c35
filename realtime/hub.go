package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub tracks dashboard websocket connections keyed by employee id and fans
// order events out to all of them.
type Hub struct {
	mu         sync.RWMutex
	byEmployee map[string]*wsConn
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{byEmployee: make(map[string]*wsConn), log: log}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// RegisterEmployee replaces any existing connection for the employee.
func (h *Hub) RegisterEmployee(employeeID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byEmployee[employeeID]; ok {
		old.conn.Close()
	}
	h.byEmployee[employeeID] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterEmployee(employeeID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byEmployee[employeeID]; ok {
		c.conn.Close()
		delete(h.byEmployee, employeeID)
	}
}

// BroadcastOrderEvent sends a typed event payload to every connected
// dashboard. Write failures are logged and the connection dropped; a dead
// dashboard must not block order processing.
func (h *Hub) BroadcastOrderEvent(event string, payload any) {
	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.byEmployee))
	for id, c := range h.byEmployee {
		conns[id] = c
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for employeeID, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			h.log.Warn().Err(err).
				Str("employee_id", employeeID).
				Str("event", event).
				Msg("ws: write failed, dropping connection")
			h.UnregisterEmployee(employeeID)
		}
	}
}
