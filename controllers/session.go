package controllers

import (
	"sync"

	"github.com/levankhai101280/burger-builder-2026/models"
)

// Session owns the composition and cart of one signed-in customer. The cart
// lives in memory only; orders are the only thing that ever reaches the
// store. All access goes through View/Update so the customer's own actions
// stay serialized.
type Session struct {
	mu   sync.RWMutex
	comp *models.Composition
	cart *models.Cart
}

// Update runs fn with exclusive access to the session's composition and cart
func (s *Session) Update(fn func(comp *models.Composition, cart *models.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.comp, s.cart)
}

// View runs fn with shared read access, so the builder and cart can still
// be inspected for display while a checkout write is in flight
func (s *Session) View(fn func(comp *models.Composition, cart *models.Cart)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.comp, s.cart)
}

// Sessions hands out per-user builder sessions, creating them on demand
type Sessions struct {
	mu      sync.Mutex
	byUser  map[string]*Session
	catalog models.Catalog
}

// NewSessions creates a session registry priced against catalog
func NewSessions(catalog models.Catalog) *Sessions {
	return &Sessions{
		byUser:  make(map[string]*Session),
		catalog: catalog,
	}
}

// For returns the session owned by userID, creating it if needed
func (ss *Sessions) For(userID string) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sess, ok := ss.byUser[userID]
	if !ok {
		sess = &Session{
			comp: models.NewComposition(ss.catalog),
			cart: models.NewCart(),
		}
		ss.byUser[userID] = sess
	}
	return sess
}
