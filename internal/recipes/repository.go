// Package recipes holds the in-memory recipe repository and the sync
// gateway that mirrors it against the remote document store.
package recipes

import (
	"sync"

	"recipekeeper/internal/broadcast"
	"recipekeeper/internal/common"
	"recipekeeper/internal/models"
)

// Repository is the authoritative in-memory recipe collection. Recipes are
// addressed by index; every index is validated against the current length
// because the backing sequence can shrink.
type Repository struct {
	mu      sync.RWMutex
	recipes []models.Recipe
	changed *broadcast.Broadcaster[[]models.Recipe]
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		recipes: []models.Recipe{},
		changed: broadcast.New([]models.Recipe{}),
	}
}

// All returns a copy of the collection.
func (r *Repository) All() []models.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out
}

// Get returns the recipe at index i.
func (r *Repository) Get(i int) (models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.recipes) {
		return models.Recipe{}, common.ErrorIndexOutOfRange
	}
	return r.recipes[i], nil
}

// Len returns the number of recipes.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}

// Add appends a recipe.
func (r *Repository) Add(recipe models.Recipe) {
	recipe.Normalize()
	r.mu.Lock()
	r.recipes = append(r.recipes, recipe)
	r.mu.Unlock()
	r.notify()
}

// Update replaces the recipe at index i.
func (r *Repository) Update(i int, recipe models.Recipe) error {
	recipe.Normalize()
	r.mu.Lock()
	if i < 0 || i >= len(r.recipes) {
		r.mu.Unlock()
		return common.ErrorIndexOutOfRange
	}
	r.recipes[i] = recipe
	r.mu.Unlock()
	r.notify()
	return nil
}

// Delete removes the recipe at index i; later recipes shift down.
func (r *Repository) Delete(i int) error {
	r.mu.Lock()
	if i < 0 || i >= len(r.recipes) {
		r.mu.Unlock()
		return common.ErrorIndexOutOfRange
	}
	r.recipes = append(r.recipes[:i], r.recipes[i+1:]...)
	r.mu.Unlock()
	r.notify()
	return nil
}

// Replace overwrites the whole collection, as after a fetch from the
// remote document store.
func (r *Repository) Replace(recipes []models.Recipe) {
	normalized := make([]models.Recipe, len(recipes))
	copy(normalized, recipes)
	for i := range normalized {
		normalized[i].Normalize()
	}
	r.mu.Lock()
	r.recipes = normalized
	r.mu.Unlock()
	r.notify()
}

// Subscribe registers fn for collection snapshots: once immediately, then
// after every mutation.
func (r *Repository) Subscribe(fn func([]models.Recipe)) string {
	return r.changed.Subscribe(fn)
}

// Unsubscribe removes a subscriber.
func (r *Repository) Unsubscribe(id string) {
	r.changed.Unsubscribe(id)
}

func (r *Repository) notify() {
	r.changed.Publish(r.All())
}
