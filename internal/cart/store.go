package cart

import (
	"slices"
	"sync"
)

// Store maps session ids to carts. Each browser session mutates its own
// cart synchronously, but distinct sessions hit the handlers
// concurrently, so access goes through one lock.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Do runs fn against the session's cart under the store lock, creating
// the cart on first use.
func (s *Store) Do(sessionID string, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return fn(c)
}

// Snapshot returns a copy of the session's cart safe to read without
// the lock.
func (s *Store) Snapshot(sessionID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return Cart{}
	}
	return Cart{
		SelectedMood: c.SelectedMood,
		Items:        slices.Clone(c.Items),
	}
}
