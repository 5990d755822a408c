package models

// Ingredient is a named quantity. It is a value type: two ingredients are
// equal when both fields match.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Recipe is a single recipe as stored in the remote document.
// Ingredients may be absent in remote payloads; the sync gateway normalizes
// a missing list to an empty one before the recipe enters the repository.
type Recipe struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ImagePath   string       `json:"imagePath"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Normalize replaces a nil ingredient list with an empty one.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
}
