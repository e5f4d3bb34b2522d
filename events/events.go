package events

import "sync"

// Event announces that a new dataset was published.
type Event struct {
	Version int
	Source  string
}

// Hub fans dataset events out to every open browser stream. Slow subscribers miss events rather than block the
// publisher, they only ever need the latest one anyway.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan *Event
	next int
	last *Event
}

func NewHub() *Hub {
	return &Hub{subs: map[int]chan *Event{}}
}

// Subscribe returns a channel of events and a cancel func that closes it. A subscriber joining after a publish gets
// the latest event straight away.
func (h *Hub) Subscribe() (int, <-chan *Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan *Event, 16)
	if h.last != nil {
		ch <- h.copy(h.last)
	}
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			close(c)
			delete(h.subs, id)
		}
	}
	return id, ch, cancel
}

func (h *Hub) Broadcast(event *Event) {
	h.mu.Lock()
	h.last = event
	for _, ch := range h.subs {
		select {
		case ch <- h.copy(event):
		default:
		}
	}
	h.mu.Unlock()
}

// Subscribers is the number of open subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) copy(e *Event) *Event {
	return &Event{e.Version, e.Source}
}
