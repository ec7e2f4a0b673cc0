package handlers

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"launchdash/events"
)

// sessions keeps the widget state of each browser, least recently used clients are dropped once
// the cache is full and start over from the default selection. Dropping a client closes its hub so
// open update streams move over to the new session.
type sessions struct {
	mu         sync.Mutex
	cache      *lru.Cache
	newSession func() *events.Dispatcher
}

func newSessions(size int, newSession func() *events.Dispatcher) (*sessions, error) {
	cache, err := lru.NewWithEvict(size, func(_ interface{}, value interface{}) {
		if hub := value.(*events.Dispatcher).Hub(); hub != nil {
			hub.Close()
		}
	})
	if err != nil {
		return nil, err
	}
	return &sessions{cache: cache, newSession: newSession}, nil
}

// get returns the dispatcher for clientID, creating it on first use.
func (s *sessions) get(clientID string) *events.Dispatcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.cache.Get(clientID); ok {
		return d.(*events.Dispatcher)
	}
	d := s.newSession()
	s.cache.Add(clientID, d)
	return d
}

func (s *sessions) len() int {
	return s.cache.Len()
}
