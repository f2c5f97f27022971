// Package optimize is the single entry point the CLI uses to turn a stored
// recipe into amounts: scale (to a target or to the pantry maximum), then an
// optional sourdough discard substitution, then hydration.
package optimize

import (
	"fmt"
	"log/slog"
	"strings"

	"levain/internal/hydration"
	"levain/internal/ingredient"
	"levain/internal/logging"
	"levain/internal/recipe"
	"levain/internal/scale"
	"levain/internal/sdd"
)

// Mode selects how the serving count is chosen.
type Mode string

const (
	// ModeMaximize derives servings from ingredient availability.
	ModeMaximize Mode = "maximize"
	// ModeTarget uses the requested serving count.
	ModeTarget Mode = "target"
)

// ParseMode accepts the menu numbers and mode names.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "1", "max", "maximize":
		return ModeMaximize, nil
	case "2", "target":
		return ModeTarget, nil
	default:
		return "", fmt.Errorf("unknown optimization mode %q (want maximize or target)", value)
	}
}

// Request describes one optimization run.
type Request struct {
	Mode Mode
	// Target is the serving count for ModeTarget.
	Target float64
	// Available maps ingredient to on-hand quantity for ModeMaximize; missing
	// ingredients are unlimited.
	Available map[string]float64
	UseSDD    bool
	SDD       float64
}

// Result carries everything the shell displays.
type Result struct {
	Recipe    string            `json:"recipe" yaml:"recipe"`
	Mode      Mode              `json:"mode" yaml:"mode"`
	Servings  float64           `json:"servings" yaml:"servings"`
	Amounts   recipe.Quantities `json:"amounts" yaml:"amounts"`
	Flour     string            `json:"flour,omitempty" yaml:"flour,omitempty"`
	Hydration *float64          `json:"hydration,omitempty" yaml:"hydration,omitempty"`
	Warnings  []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Optimizer runs requests with a fixed classifier.
type Optimizer struct {
	classifier ingredient.Classifier
	logger     *slog.Logger
}

// New returns an optimizer. A nil logger discards output.
func New(classifier ingredient.Classifier, logger *slog.Logger) *Optimizer {
	return &Optimizer{
		classifier: classifier,
		logger:     logging.NewComponentLogger(logger, "optimizer"),
	}
}

// Optimize scales r according to req and reports amounts, hydration, and
// any discard warnings.
func (o *Optimizer) Optimize(r recipe.Recipe, req Request) (Result, error) {
	res := Result{Recipe: r.Name, Mode: req.Mode}

	switch req.Mode {
	case ModeTarget:
		amounts, err := scale.ToServings(r.Ingredients, req.Target)
		if err != nil {
			return Result{}, err
		}
		res.Servings = req.Target
		res.Amounts = amounts
	case ModeMaximize:
		servings, amounts, err := scale.Maximize(r.Ingredients, req.Available)
		if err != nil {
			return Result{}, err
		}
		res.Servings = servings
		res.Amounts = amounts
	default:
		return Result{}, fmt.Errorf("unknown optimization mode %q", req.Mode)
	}

	var hasFlour bool
	if req.UseSDD {
		applied, err := sdd.Apply(res.Amounts, req.SDD, o.classifier)
		if err != nil {
			return Result{}, err
		}
		res.Amounts = applied.Amounts
		res.Flour, hasFlour = applied.Flour, applied.HasFlour
		res.Warnings = applied.Warnings
	} else {
		res.Flour, hasFlour = o.classifier.Flour(res.Amounts.Names())
	}

	if hasFlour {
		if h, ok := hydration.Calculate(res.Amounts, res.Flour, o.classifier); ok {
			res.Hydration = &h
		}
	}

	for _, w := range res.Warnings {
		o.logger.Debug("discard substitution clamped",
			logging.String(logging.FieldRecipe, r.Name),
			logging.String("warning", w))
	}
	o.logger.Info("recipe optimized",
		logging.String(logging.FieldRecipe, r.Name),
		logging.String("mode", string(req.Mode)),
		logging.Float64("servings", res.Servings),
		logging.Bool("sdd", req.UseSDD))

	return res, nil
}
