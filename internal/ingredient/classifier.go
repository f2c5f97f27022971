// Package ingredient identifies which ingredients play the flour and liquid
// roles in a recipe.
//
// Matching is a case-insensitive substring test against short hint lists, so
// "Whole Wheat Flour" is flour and "WATER" or "buttermilk" is liquid. It is a
// heuristic, not a lookup table.
package ingredient

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"levain/internal/config"
)

// Classifier holds the hint lists for the flour and liquid roles.
type Classifier struct {
	FlourHints  []string
	LiquidHints []string
}

// DefaultClassifier uses flour = {"flour"} and liquid = {"water", "milk"}.
func DefaultClassifier() Classifier {
	return Classifier{
		FlourHints:  config.DefaultFlourHints(),
		LiquidHints: config.DefaultLiquidHints(),
	}
}

// FromConfig builds a classifier from the [classifier] config section.
func FromConfig(cfg *config.Config) Classifier {
	if cfg == nil {
		return DefaultClassifier()
	}
	return Classifier{
		FlourHints:  cfg.Classifier.FlourHints,
		LiquidHints: cfg.Classifier.LiquidHints,
	}
}

// Flour returns the first name that matches a flour hint.
func (c Classifier) Flour(names []string) (string, bool) {
	return Classify(names, c.FlourHints)
}

// Liquid returns the first name that matches a liquid hint.
func (c Classifier) Liquid(names []string) (string, bool) {
	return Classify(names, c.LiquidHints)
}

// IsLiquid reports whether name matches any liquid hint.
func (c Classifier) IsLiquid(name string) bool {
	return Matches(name, c.LiquidHints)
}

// Classify returns the first name, in the order given, whose lowercased form
// contains any hint.
func Classify(names []string, hints []string) (string, bool) {
	lower := cases.Lower(language.Und)
	for _, name := range names {
		if matches(lower.String(name), hints) {
			return name, true
		}
	}
	return "", false
}

// Matches reports whether the lowercased name contains any hint.
func Matches(name string, hints []string) bool {
	return matches(cases.Lower(language.Und).String(name), hints)
}

func matches(lowered string, hints []string) bool {
	for _, hint := range hints {
		if hint != "" && strings.Contains(lowered, hint) {
			return true
		}
	}
	return false
}
