package events

import (
	"sync"

	"launchdash/models"
)

// Event carries a freshly computed chart for one output.
type Event struct {
	Output string
	Spec   *models.ChartSpec
}

type EventHub struct {
	mu   sync.Mutex
	subs map[int]chan *Event
	next int
	// last holds the latest event per output so new subscribers start with every chart.
	last  map[string]*Event
	order []string
	// closed hubs hand out channels that are already closed.
	closed bool
}

func NewHub() *EventHub {
	return &EventHub{subs: map[int]chan *Event{}, last: map[string]*Event{}}
}

func (h *EventHub) Subscribe() (int, <-chan *Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan *Event, 16)
	for _, output := range h.order {
		ch <- h.copy(h.last[output])
	}
	if h.closed {
		close(ch)
		return id, ch, func() {}
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

func (h *EventHub) Broadcast(event *Event) {
	h.mu.Lock()
	if _, ok := h.last[event.Output]; !ok {
		h.order = append(h.order, event.Output)
	}
	h.last[event.Output] = event
	for _, ch := range h.subs {
		select {
		case ch <- h.copy(event):
		default:
		}
	}
	h.mu.Unlock()
}

// Close ends every subscription, subscribers see their channel closed once they've drained it.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

// Latest returns the last event broadcast for output, or nil.
func (h *EventHub) Latest(output string) *Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.last[output]
	if !ok {
		return nil
	}
	return h.copy(e)
}

// Subscribers is the number of open subscriptions.
func (h *EventHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// copy is shallow, specs are never modified after they're broadcast.
func (h *EventHub) copy(e *Event) *Event {
	return &Event{e.Output, e.Spec}
}
