// Package scale turns per-serving ratios into absolute ingredient amounts.
//
// ToServings multiplies every ratio by a requested serving count. Maximize
// finds the largest serving count the pantry allows: the ingredient with the
// least stock relative to its ratio caps the batch, and every amount is then
// derived from that count.
package scale

import (
	"errors"
	"fmt"
	"math"

	"levain/internal/recipe"
)

var (
	// ErrUnbounded reports that no ingredient limits the batch size.
	ErrUnbounded = errors.New("no ingredient limits the serving count")
	// ErrUnknownIngredient reports availability given for an ingredient the recipe does not use.
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

// ToServings returns ratio * servings for every ingredient.
func ToServings(ratios recipe.Quantities, servings float64) (recipe.Quantities, error) {
	if err := recipe.Positive("target servings", servings); err != nil {
		return nil, err
	}
	return multiply(ratios, servings), nil
}

// Maximize returns the largest serving count allowed by available and the
// amounts for that count. Ingredients missing from available are unlimited,
// as is +Inf. Ingredients with a zero ratio never limit the batch.
func Maximize(ratios recipe.Quantities, available map[string]float64) (float64, recipe.Quantities, error) {
	for name, qty := range available {
		if !ratios.Has(name) {
			return 0, nil, fmt.Errorf("%w: %q is not in the recipe", ErrUnknownIngredient, name)
		}
		if math.IsNaN(qty) || qty < 0 {
			return 0, nil, fmt.Errorf("%w: available %s must be zero or greater, got %v", recipe.ErrInvalidNumericInput, name, qty)
		}
	}

	servings := math.Inf(1)
	for _, item := range ratios {
		if item.Value <= 0 {
			continue
		}
		qty, limited := available[item.Name]
		if !limited || math.IsInf(qty, 1) {
			continue
		}
		servings = math.Min(servings, qty/item.Value)
	}
	if math.IsInf(servings, 1) {
		return 0, nil, ErrUnbounded
	}
	return servings, multiply(ratios, servings), nil
}

func multiply(ratios recipe.Quantities, servings float64) recipe.Quantities {
	out := make(recipe.Quantities, 0, len(ratios))
	for _, item := range ratios {
		out = append(out, recipe.Quantity{Name: item.Name, Value: item.Value * servings})
	}
	return out
}
