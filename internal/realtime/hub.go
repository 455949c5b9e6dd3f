// Package realtime delivers row-change events to in-process
// subscribers. Subscriptions are scoped to a table and an optional
// column filter, mirroring the push primitive of the hosted store.
package realtime

import (
	"sync"
)

// ChangeType classifies a row-change event.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Event is one row change on a table. Payload holds the new row values
// keyed by column name.
type Event struct {
	Table   string
	Type    ChangeType
	Payload map[string]any
}

// Filter scopes a subscription to rows whose column equals a value.
// The zero Filter matches every row of the table.
type Filter struct {
	Column string
	Equals string
}

func (f Filter) matches(e Event) bool {
	if f.Column == "" {
		return true
	}
	value, ok := e.Payload[f.Column]
	if !ok {
		return false
	}
	s, ok := value.(string)
	return ok && s == f.Equals
}

// Subscription receives events for one table+filter scope. Events
// arrive on C in publish order; no buffering of missed events happens
// beyond the channel's capacity.
type Subscription struct {
	C      <-chan Event
	cancel func()
}

// Unsubscribe detaches the subscription and closes its channel.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.cancel != nil {
		s.cancel()
	}
}

type subscriber struct {
	id     int
	table  string
	filter Filter
	ch     chan Event
}

// Hub fans row-change events out to subscribers. Publish is
// synchronous with respect to channel sends but never blocks: a
// subscriber that falls behind drops events (last-write-wins display
// state makes this safe).
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscriber)}
}

// Subscribe registers interest in a table's row changes.
func (h *Hub) Subscribe(table string, filter Filter) *Subscription {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = &subscriber{id: id, table: table, filter: filter, ch: ch}
	h.mu.Unlock()

	return &Subscription{
		C: ch,
		cancel: func() {
			h.mu.Lock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub.ch)
			}
			h.mu.Unlock()
		},
	}
}

// Publish delivers an event to every matching subscriber. Each
// subscriber sees events in publish order; ordering across
// subscribers is unspecified.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if sub.table != event.Table || !sub.filter.matches(event) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}
