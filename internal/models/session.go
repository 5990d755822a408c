// Package models defines the data types shared across RecipeKeeper
// components: the authenticated session and the recipe domain types.
package models

import "time"

// Session is the authenticated identity returned by the identity provider.
// A Session with an empty Token is unauthenticated no matter what the other
// fields contain; token presence is the sole authentication predicate.
type Session struct {
	Email     string    `json:"email"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Remaining returns the session lifetime left at the given instant.
// The result is negative when the session has already expired.
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
