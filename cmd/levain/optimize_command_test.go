package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"levain/internal/recipe"
	"levain/internal/scale"
)

func TestOptimizeTargetWithDiscard(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "2")
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	requireContains(t, out, "Loaf: 2 servings")
	requireContains(t, out, "400")
	requireContains(t, out, "250")
	requireContains(t, out, "Hydration: 62.5%")
	requireNotContains(t, out, "sdd")

	out, _, err = runCLI(t, env, "", "optimize", "A", "--target", "2", "--sdd", "100")
	if err != nil {
		t.Fatalf("optimize with sdd: %v", err)
	}
	requireContains(t, out, "350")
	requireContains(t, out, "200")
	requireContains(t, out, "sdd")
	requireContains(t, out, "Hydration: 57.1%")
	requireNotContains(t, out, "Warning")
}

func TestOptimizeMaximize(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, "", "optimize", "Loaf", "--have", "flour=640", "--have", "water=1000")
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	requireContains(t, out, "Loaf: max servings 3.2")
	requireContains(t, out, "640")
	requireContains(t, out, "400")
}

func TestOptimizeDiscardWarnings(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "1", "--sdd", "1000")
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	requireContains(t, out, "Warning: SDD exceeds flour; flour reduced to 0")
	requireContains(t, out, "Warning: SDD exceeds liquid; liquid reduced to 0")
	requireNotContains(t, out, "Hydration")
}

func TestOptimizeJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "2", "--sdd", "100", "--output", "json")
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}

	var got struct {
		Recipe    string            `json:"recipe"`
		Mode      string            `json:"mode"`
		Servings  float64           `json:"servings"`
		Amounts   recipe.Quantities `json:"amounts"`
		Flour     string            `json:"flour"`
		Hydration *float64          `json:"hydration"`
		Warnings  []string          `json:"warnings"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	wantAmounts := recipe.Quantities{{Name: "flour", Value: 350}, {Name: "water", Value: 200}, {Name: "sdd", Value: 100}}
	if diff := cmp.Diff(wantAmounts, got.Amounts, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("amounts mismatch (-want +got):\n%s", diff)
	}
	if got.Recipe != "Loaf" || got.Mode != "target" || got.Servings != 2 || got.Flour != "flour" {
		t.Fatalf("unexpected result header: %+v", got)
	}
	if got.Hydration == nil || *got.Hydration < 57.14 || *got.Hydration > 57.15 {
		t.Fatalf("hydration = %v", got.Hydration)
	}
	if len(got.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", got.Warnings)
	}
}

func TestOptimizeYAMLOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, "", "optimize", "Loaf", "--have", "flour=640", "-o", "yaml")
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	requireContains(t, out, "recipe: Loaf")
	requireContains(t, out, "mode: maximize")
	requireContains(t, out, "servings: 3.2")
	requireContains(t, out, "amounts:\n  flour: 640\n  water: 400")
}

func TestOptimizeErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	if _, _, err := runCLI(t, env, "", "optimize", "Loaf"); !errors.Is(err, scale.ErrUnbounded) {
		t.Fatalf("unbounded error = %v", err)
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Loaf", "--have", "rye=10"); !errors.Is(err, scale.ErrUnknownIngredient) {
		t.Fatalf("unknown ingredient error = %v", err)
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "0"); !errors.Is(err, recipe.ErrInvalidNumericInput) {
		t.Fatalf("zero target error = %v", err)
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "2", "--sdd", "-1"); !errors.Is(err, recipe.ErrInvalidNumericInput) {
		t.Fatalf("negative sdd error = %v", err)
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "2", "--have", "flour=1"); err == nil {
		t.Fatal("expected error combining --target and --have")
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Loaf", "--target", "2", "--output", "xml"); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
	if _, _, err := runCLI(t, env, "", "optimize", "Rye", "--target", "2"); !errors.Is(err, recipe.ErrRecipeNotFound) {
		t.Fatalf("missing recipe error = %v", err)
	}
}
