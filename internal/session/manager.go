package session

import (
	"context"
	"time"

	"recipekeeper/internal/logging"
	"recipekeeper/internal/models"
)

// Gateway is the slice of the auth gateway the manager needs.
type Gateway interface {
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Signup(ctx context.Context, email string, password []byte) (*models.Session, error)
}

// Cache is the slice of the credential cache the manager needs.
type Cache interface {
	Save(ctx context.Context, s *models.Session) error
	Restore(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// Manager drives the session state machine between Anonymous and
// Authenticated. On every successful authentication it persists the
// snapshot, arms the expiry scheduler, and publishes to the store; expiry
// and explicit logout both run the full logout sequence.
type Manager struct {
	gateway Gateway
	cache   Cache
	store   *Store
	sched   *ExpiryScheduler
	log     logging.Logger

	// now is a test seam for remaining-lifetime computation.
	now func() time.Time
}

// NewManager wires the lifecycle components together. The scheduler is
// owned by the manager.
func NewManager(gw Gateway, c Cache, store *Store, log logging.Logger) *Manager {
	return &Manager{
		gateway: gw,
		cache:   c,
		store:   store,
		sched:   &ExpiryScheduler{},
		log:     log,
		now:     time.Now,
	}
}

// Store exposes the observable session store for consumers (CLI, gateways).
func (m *Manager) Store() *Store {
	return m.store
}

// Token returns the current session token, or "" when anonymous. Used by
// the recipe sync gateway to authorize document requests.
func (m *Manager) Token() string {
	if s := m.store.Current(); s.Authenticated() {
		return s.Token
	}
	return ""
}

// Login authenticates existing credentials. On failure no state is touched.
func (m *Manager) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	s, err := m.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.establish(ctx, s)
	return s, nil
}

// Signup creates an account and establishes the resulting session.
func (m *Manager) Signup(ctx context.Context, email string, password []byte) (*models.Session, error) {
	s, err := m.gateway.Signup(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.establish(ctx, s)
	return s, nil
}

// establish runs the success side effects in order: cache save, scheduler
// arm, store publish. A failed cache write is logged but does not abort the
// in-memory session.
func (m *Manager) establish(ctx context.Context, s *models.Session) {
	if err := m.cache.Save(ctx, s); err != nil {
		m.log.Warn(ctx, "failed to persist session snapshot", "error", err)
	}
	m.armExpiry(s)
	m.store.Publish(s)
	m.log.Info(ctx, "session established", "email", s.Email, "expires_at", s.ExpiresAt)
}

// Restore rehydrates the session from the credential cache at startup.
// A missing snapshot, a snapshot without a token, or an unreadable snapshot
// all leave the manager anonymous: no publish, no armed expiry. A snapshot
// whose expiry is already past is published and then expires immediately.
func (m *Manager) Restore(ctx context.Context) (*models.Session, error) {
	s, err := m.cache.Restore(ctx)
	if err != nil {
		m.log.Warn(ctx, "discarding unreadable session snapshot", "error", err)
		return nil, nil
	}
	if s == nil {
		return nil, nil
	}
	if !s.Authenticated() {
		m.log.Debug(ctx, "cached session has no token, staying anonymous")
		return nil, nil
	}

	m.store.Publish(s)
	m.armExpiry(s)
	m.log.Info(ctx, "session restored", "email", s.Email, "remaining", s.Remaining(m.now()))
	return s, nil
}

// Logout publishes "no session", clears the credential cache, and cancels
// any pending expiry. All three run regardless of individual failures; the
// first error is returned.
func (m *Manager) Logout(ctx context.Context) error {
	m.store.Publish(nil)
	err := m.cache.Clear(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to clear session snapshot", "error", err)
	}
	m.sched.Cancel()
	m.log.Info(ctx, "logged out")
	return err
}

func (m *Manager) armExpiry(s *models.Session) {
	m.sched.Arm(s.Remaining(m.now()), func() {
		// A fresh context: the expiry fires long after the triggering
		// call returned.
		_ = m.Logout(context.Background())
	})
}
