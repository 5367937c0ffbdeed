package hub

import (
	"encoding/json"
	"sync"
)

// Event types published on catalog mutations.
const (
	GameCreated = "game.created"
	GameUpdated = "game.updated"
	GameDeleted = "game.deleted"
)

// clientBuffer bounds how many undelivered events a subscriber may hold.
const clientBuffer = 16

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is the receiving end of one subscription. The hub closes it on Unsubscribe.
type Client chan []byte

// Hub fans catalog events out to every subscribed client.
type Hub struct {
	clients map[Client]struct{}
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]struct{}),
	}
}

// Subscribe registers and returns a new client.
func (h *Hub) Subscribe() Client {
	client := make(Client, clientBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	return client
}

// Unsubscribe removes a client and closes its channel. Safe to call twice.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Count reports the number of subscribed clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast encodes event once and offers it to every client. It returns
// how many clients accepted it; a client with a full buffer misses the event.
func (h *Hub) Broadcast(event Event) (int, error) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return 0, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.clients {
		select {
		case client <- messageBytes:
			delivered++
		default:
		}
	}
	return delivered, nil
}
