// Package hydration computes the baker's percentage of liquid to flour.
package hydration

import (
	"levain/internal/ingredient"
	"levain/internal/recipe"
)

// Calculate returns 100 * total liquid / flour. Every ingredient matching a
// liquid hint counts toward the total, while only the named flour ingredient
// forms the base. ok is false when flour is empty, missing, or not positive.
func Calculate(amounts recipe.Quantities, flour string, classifier ingredient.Classifier) (float64, bool) {
	if flour == "" {
		return 0, false
	}
	flourAmount, found := amounts.Get(flour)
	if !found || flourAmount <= 0 {
		return 0, false
	}

	var liquid float64
	for _, item := range amounts {
		if classifier.IsLiquid(item.Name) {
			liquid += item.Value
		}
	}
	return 100 * liquid / flourAmount, true
}
