package recipe

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDuplicateOrInvalidName reports an empty recipe name or one already in the store.
	ErrDuplicateOrInvalidName = errors.New("invalid or duplicate recipe name")
	// ErrInvalidNumericInput reports a non-finite or below-minimum number.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrInvalidIngredient reports an empty or repeated ingredient name.
	ErrInvalidIngredient = errors.New("invalid ingredient")
	// ErrRecipeNotFound reports a lookup key that matches no recipe name or menu letter.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Positive validates that value is finite and strictly greater than zero.
func Positive(label string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidNumericInput, label, value)
	}
	return nil
}

// NonNegative validates that value is finite and at least zero.
func NonNegative(label string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: %s must be zero or greater, got %v", ErrInvalidNumericInput, label, value)
	}
	return nil
}
