// Package broadcast implements a latest-value broadcaster: an observer list
// where every new subscriber immediately receives the most recent value and
// all subscribers receive every subsequent publish, in publish order.
package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// Broadcaster holds a current value of type T and fans out updates to
// subscribers. The zero value is not usable; create one with New.
type Broadcaster[T any] struct {
	mu          sync.Mutex
	current     T
	subscribers map[string]func(T)
}

// New creates a Broadcaster seeded with the given initial value. The initial
// value is replayed to subscribers like any published value.
func New[T any](initial T) *Broadcaster[T] {
	return &Broadcaster[T]{
		current:     initial,
		subscribers: make(map[string]func(T)),
	}
}

// Subscribe registers fn and invokes it once with the current value before
// returning. The returned id is the handle for Unsubscribe.
//
// fn runs with the broadcaster lock held and must not call back into the
// broadcaster.
func (b *Broadcaster[T]) Subscribe(fn func(T)) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.subscribers[id] = fn
	fn(b.current)
	return id
}

// Unsubscribe removes the subscriber; unknown ids are ignored.
func (b *Broadcaster[T]) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, id)
}

// Publish replaces the current value and notifies every subscriber.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = v
	for _, fn := range b.subscribers {
		fn(v)
	}
}

// Current returns the most recently published value.
func (b *Broadcaster[T]) Current() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
