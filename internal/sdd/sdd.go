// Package sdd applies a sourdough discard substitution to scaled amounts.
//
// Discard is treated as half flour and half liquid by mass, so adding D grams
// of discard removes D/2 from the flour ingredient and D/2 from the first
// liquid ingredient. Reductions clamp at zero and produce a warning instead of
// failing.
package sdd

import (
	"levain/internal/ingredient"
	"levain/internal/recipe"
)

const (
	// Key is the line item that records the discard mass.
	Key = "sdd"
	// FlourShare and LiquidShare split discard mass between the two roles.
	FlourShare  = 0.5
	LiquidShare = 0.5

	WarnFlourExceeded  = "SDD exceeds flour; flour reduced to 0"
	WarnLiquidExceeded = "SDD exceeds liquid; liquid reduced to 0"
)

// Result is the outcome of a discard substitution.
type Result struct {
	Amounts  recipe.Quantities
	Flour    string
	HasFlour bool
	Warnings []string
}

// Apply subtracts the discard's flour and liquid share from amounts and adds
// the discard itself as the "sdd" line. The input slice is not modified.
func Apply(amounts recipe.Quantities, discard float64, classifier ingredient.Classifier) (Result, error) {
	if err := recipe.NonNegative("SDD amount", discard); err != nil {
		return Result{}, err
	}

	out := amounts.Clone()
	names := out.Names()
	flour, hasFlour := classifier.Flour(names)
	liquid, hasLiquid := classifier.Liquid(names)

	var warnings []string
	if hasFlour {
		if w, exceeded := reduce(&out, flour, FlourShare*discard, WarnFlourExceeded); exceeded {
			warnings = append(warnings, w)
		}
	}
	if hasLiquid {
		if w, exceeded := reduce(&out, liquid, LiquidShare*discard, WarnLiquidExceeded); exceeded {
			warnings = append(warnings, w)
		}
	}

	out.Set(Key, discard)
	return Result{Amounts: out, Flour: flour, HasFlour: hasFlour, Warnings: warnings}, nil
}

func reduce(amounts *recipe.Quantities, name string, by float64, warning string) (string, bool) {
	current, _ := amounts.Get(name)
	exceeded := by > current
	next := current - by
	if next < 0 {
		next = 0
	}
	amounts.Set(name, next)
	if exceeded {
		return warning, true
	}
	return "", false
}
