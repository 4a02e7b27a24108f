package browse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"luminavenues/internal/listing"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// connection is one WebSocket subscriber. The writePump goroutine is the only
// writer on the underlying conn; everyone else enqueues onto send.
type connection struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks WebSocket subscribers per browse session and pushes state
// snapshots to them whenever the session changes.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*connection
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*connection)}
}

// ServeWS registers the connection, queues the initial snapshot and blocks
// reading until the client disconnects.
func (h *Hub) ServeWS(sessionID string, conn *websocket.Conn, initial listing.Snapshot) {
	c := &connection{conn: conn, send: make(chan []byte, 64)}

	// initial state so the client renders without a separate GET; the channel
	// is fresh and buffered, this cannot block
	if data, err := json.Marshal(snapshotMessage(initial)); err == nil {
		c.send <- data
	}

	h.mu.Lock()
	h.conns[sessionID] = append(h.conns[sessionID], c)
	h.mu.Unlock()

	go c.writePump()
	h.readPump(sessionID, c)
}

func (h *Hub) readPump(sessionID string, c *connection) {
	defer h.detach(sessionID, c)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// client messages are ignored; reading only detects disconnects
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// detach removes the connection and closes its send channel, which makes the
// writePump send a close frame and drop the conn. send channels are only ever
// closed under the write lock and only after removal from the map, so
// Broadcast (which holds the read lock) can never enqueue onto a closed
// channel.
func (h *Hub) detach(sessionID string, c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.conns[sessionID]
	for i, other := range subs {
		if other == c {
			h.conns[sessionID] = append(subs[:i], subs[i+1:]...)
			close(c.send)
			break
		}
	}
	if len(h.conns[sessionID]) == 0 {
		delete(h.conns, sessionID)
	}
}

// Broadcast enqueues a message for every subscriber of a session, in call
// order. Subscribers whose buffer is full are skipped, not blocked on.
func (h *Hub) Broadcast(sessionID string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.conns[sessionID] {
		select {
		case c.send <- data:
		default:
			// client too slow, skip
		}
	}
}

func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.conns[sessionID] {
		close(c.send)
	}
	delete(h.conns, sessionID)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, subs := range h.conns {
		for _, c := range subs {
			close(c.send)
		}
		delete(h.conns, id)
	}
}

// writePump is the single writer for one connection. It owns the ping ticker
// so pings can never interleave with snapshot frames.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type wsMessage struct {
	Type     string           `json:"type"`
	Snapshot listing.Snapshot `json:"snapshot"`
}

func snapshotMessage(snap listing.Snapshot) wsMessage {
	return wsMessage{Type: "snapshot", Snapshot: snap}
}
