package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"esporte-social/internal/models"
)

// Hub is the in-memory room membership registry. Rooms are plain string
// keys; a room exists while at least one connection is registered under it.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[Conn]bool)}
}

// Join registers a connection in a room. Re-joining is a no-op.
func (h *Hub) Join(room string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[Conn]bool)
	}
	h.rooms[room][conn] = true
}

// Leave removes a connection from a room; absent members are a no-op.
func (h *Hub) Leave(room string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(room, conn)
}

// Members returns a snapshot of the connections currently in a room.
func (h *Hub) Members(room string) []Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conns := make([]Conn, 0, len(h.rooms[room]))
	for conn := range h.rooms[room] {
		conns = append(conns, conn)
	}
	return conns
}

// RemoveEverywhere removes a connection from every room it joined and
// returns those rooms. Used on disconnect.
func (h *Hub) RemoveEverywhere(conn Conn) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var affected []string
	for room, conns := range h.rooms {
		if conns[conn] {
			affected = append(affected, room)
			h.removeLocked(room, conn)
		}
	}
	return affected
}

// Broadcast fans an event out to the room's current member snapshot. A
// failed write closes and deregisters only that recipient; delivery to the
// rest continues.
func (h *Hub) Broadcast(room string, event models.ChatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}

	for _, conn := range h.Members(room) {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("websocket write error: %v", err)
			conn.Close()
			h.RemoveEverywhere(conn)
		}
	}
}

// SendTo delivers an event to a single connection only.
func (h *Hub) SendTo(conn Conn, event models.ChatEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Hub) removeLocked(room string, conn Conn) {
	if conns, ok := h.rooms[room]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, room)
		}
	}
}
