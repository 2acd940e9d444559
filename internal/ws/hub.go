// Package ws pushes session snapshots to the browser tabs of the same visitor.
package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/wsawebmaster/delivery/internal/view"
)

// EventSnapshot is the type of a pushed session view.
const EventSnapshot = "snapshot"

// Event is a message sent to clients.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type sessionEvent struct {
	sessionID string
	message   []byte
}

// Hub maintains the connected clients per session and fans events out to them.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan sessionEvent
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a Hub. Call Run to start it.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan sessionEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.sessionID] == nil {
				h.rooms[client.sessionID] = make(map[*Client]bool)
			}
			h.rooms[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.drop(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[event.sessionID] {
				select {
				case client.send <- event.message:
				default:
					// slow consumer
					h.drop(client)
				}
			}
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.rooms {
				for client := range clients {
					h.drop(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// drop must be called with h.mu held.
func (h *Hub) drop(client *Client) {
	clients, ok := h.rooms[client.sessionID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.sessionID)
	}
}

// Publish sends snap to every client of sessionID. It never blocks; when the hub is
// saturated the event is dropped.
func (h *Hub) Publish(sessionID string, snap view.Snapshot) {
	snap.Notice = nil
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to encode snapshot")
		return
	}
	message, err := json.Marshal(Event{Type: EventSnapshot, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to encode event")
		return
	}

	select {
	case h.broadcast <- sessionEvent{sessionID: sessionID, message: message}:
	default:
		log.Warn().Str("session_id", sessionID).Msg("Websocket hub saturated, snapshot dropped")
	}
}

// Clients returns the number of connected clients of sessionID.
func (h *Hub) Clients(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionID])
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
