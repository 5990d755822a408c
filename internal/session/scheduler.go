package session

import (
	"sync"
	"time"
)

// ExpiryScheduler arms a single one-shot callback matching the session's
// remaining lifetime. It is an owned field of the Manager, never a package
// global; re-arming cancels the previously armed callback.
type ExpiryScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Arm schedules onExpire to fire once after d, replacing any pending
// callback. A non-positive d means the session is already expired and the
// callback fires immediately.
func (s *ExpiryScheduler) Arm(d time.Duration, onExpire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	if d < 0 {
		d = 0
	}
	s.timer = time.AfterFunc(d, onExpire)
}

// Cancel disarms the pending callback if any; idempotent.
func (s *ExpiryScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Armed reports whether a callback is currently scheduled. A fired timer
// still counts as armed until Cancel; the manager always cancels on logout.
func (s *ExpiryScheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
