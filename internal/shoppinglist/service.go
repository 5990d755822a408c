// Package shoppinglist maintains the in-memory shopping list. Entries are
// plain ingredients addressed by index; because the backing sequence can
// shrink, every index is revalidated before a mutation.
package shoppinglist

import (
	"sync"

	"recipekeeper/internal/broadcast"
	"recipekeeper/internal/common"
	"recipekeeper/internal/models"
)

// Service owns the shopping list.
type Service struct {
	mu      sync.RWMutex
	entries []models.Ingredient
	changed *broadcast.Broadcaster[[]models.Ingredient]
}

// New creates an empty shopping list.
func New() *Service {
	return &Service{
		entries: []models.Ingredient{},
		changed: broadcast.New([]models.Ingredient{}),
	}
}

// All returns a copy of the list.
func (s *Service) All() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ingredient, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry at index i.
func (s *Service) Get(i int) (models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return models.Ingredient{}, common.ErrorIndexOutOfRange
	}
	return s.entries[i], nil
}

// Len returns the number of entries.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add appends a single entry.
func (s *Service) Add(ing models.Ingredient) {
	s.mu.Lock()
	s.entries = append(s.entries, ing)
	s.mu.Unlock()
	s.notify()
}

// AddAll appends every ingredient of a recipe, as the recipe detail view's
// "add to shopping list" does.
func (s *Service) AddAll(ings []models.Ingredient) {
	if len(ings) == 0 {
		return
	}
	s.mu.Lock()
	s.entries = append(s.entries, ings...)
	s.mu.Unlock()
	s.notify()
}

// Update replaces the entry at index i in place.
func (s *Service) Update(i int, ing models.Ingredient) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.entries) {
		s.mu.Unlock()
		return common.ErrorIndexOutOfRange
	}
	s.entries[i] = ing
	s.mu.Unlock()
	s.notify()
	return nil
}

// Delete removes the entry at index i; later entries shift down, so held
// indices must be revalidated by callers.
func (s *Service) Delete(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.entries) {
		s.mu.Unlock()
		return common.ErrorIndexOutOfRange
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.mu.Unlock()
	s.notify()
	return nil
}

// Subscribe registers fn for list snapshots: once immediately, then after
// every mutation.
func (s *Service) Subscribe(fn func([]models.Ingredient)) string {
	return s.changed.Subscribe(fn)
}

// Unsubscribe removes a subscriber.
func (s *Service) Unsubscribe(id string) {
	s.changed.Unsubscribe(id)
}

func (s *Service) notify() {
	s.changed.Publish(s.All())
}
