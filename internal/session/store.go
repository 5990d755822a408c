// Package session implements the authentication session lifecycle: the
// observable session store, the expiry scheduler, and the manager that
// drives the Anonymous/Authenticated state machine.
package session

import (
	"recipekeeper/internal/broadcast"
	"recipekeeper/internal/models"
)

// Store is the single current-value holder for the authenticated identity.
// A nil session means "no session". New subscribers immediately receive the
// most recent value; all subscribers receive every subsequent publish in
// publish order.
type Store struct {
	b *broadcast.Broadcaster[*models.Session]
}

// NewStore creates a Store with no session.
func NewStore() *Store {
	return &Store{b: broadcast.New[*models.Session](nil)}
}

// Publish replaces the current session (nil for logout).
func (s *Store) Publish(sess *models.Session) {
	s.b.Publish(sess)
}

// Current returns the latest published session, nil when anonymous.
func (s *Store) Current() *models.Session {
	return s.b.Current()
}

// Subscribe registers fn; it is invoked immediately with the current value,
// then on every publish. Returns the handle for Unsubscribe.
func (s *Store) Subscribe(fn func(*models.Session)) string {
	return s.b.Subscribe(fn)
}

// Unsubscribe removes a subscriber.
func (s *Store) Unsubscribe(id string) {
	s.b.Unsubscribe(id)
}
