// Package events fans engine happenings out to SSE subscribers. Delivery is
// best effort: a subscriber that stops draining its channel loses events
// rather than stalling the publisher.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Event types published by the engine.
const (
	TypeBatchProcessed = "batch_processed"
	TypeConfigUpdated  = "config_updated"
	TypeCleanupDone    = "cleanup_done"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// BatchProcessed reports one ingest run: how many postings arrived, how many
// survived dedup, and the archive size afterwards.
func BatchProcessed(reqID string, received, kept, archived int) string {
	return MakeEvent(reqID, TypeBatchProcessed, map[string]int{
		"received": received,
		"kept":     kept,
		"archived": archived,
	})
}

func ConfigUpdated(reqID string) string {
	return MakeEvent(reqID, TypeConfigUpdated, nil)
}

func CleanupDone(deleted int64) string {
	return MakeEvent("", TypeCleanupDone, map[string]int64{"deleted": deleted})
}

type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 10)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}
