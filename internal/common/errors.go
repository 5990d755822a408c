// Package common defines shared sentinel errors and small helpers used
// across RecipeKeeper components. Callers should use errors.Is to match
// the sentinel values.
package common

import "errors"

var (
	// Collection-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrorIndexOutOfRange = errors.New("index out of range")

	// Session-level errors.
	ErrorNotAuthenticated = errors.New("not authenticated")
)
