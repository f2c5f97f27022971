package sdd

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"levain/internal/ingredient"
	"levain/internal/recipe"
)

func TestApplyReducesFlourAndLiquid(t *testing.T) {
	amounts := recipe.Quantities{{Name: "flour", Value: 400}, {Name: "water", Value: 250}}

	res, err := Apply(amounts, 100, ingredient.DefaultClassifier())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := recipe.Quantities{{Name: "flour", Value: 350}, {Name: "water", Value: 200}, {Name: "sdd", Value: 100}}
	if diff := cmp.Diff(want, res.Amounts); diff != "" {
		t.Fatalf("amounts mismatch (-want +got):\n%s", diff)
	}
	if !res.HasFlour || res.Flour != "flour" {
		t.Fatalf("flour = %q (%v)", res.Flour, res.HasFlour)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if v, _ := amounts.Get("flour"); v != 400 {
		t.Fatalf("input mutated: flour = %v", v)
	}
}

func TestApplyClampsAndWarns(t *testing.T) {
	tests := []struct {
		name         string
		flour, water float64
		discard      float64
		wantWarnings []string
	}{
		{name: "none exceeded", flour: 100, water: 100, discard: 200, wantWarnings: nil},
		{name: "flour exceeded", flour: 40, water: 100, discard: 100, wantWarnings: []string{WarnFlourExceeded}},
		{name: "liquid exceeded", flour: 100, water: 10, discard: 100, wantWarnings: []string{WarnLiquidExceeded}},
		{name: "both exceeded", flour: 10, water: 10, discard: 100, wantWarnings: []string{WarnFlourExceeded, WarnLiquidExceeded}},
		{name: "zero discard", flour: 0, water: 0, discard: 0, wantWarnings: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts := recipe.Quantities{{Name: "Bread Flour", Value: tt.flour}, {Name: "Water", Value: tt.water}}
			res, err := Apply(amounts, tt.discard, ingredient.DefaultClassifier())
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if diff := cmp.Diff(tt.wantWarnings, res.Warnings, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
			}
			flour, _ := res.Amounts.Get("Bread Flour")
			water, _ := res.Amounts.Get("Water")
			sddValue, _ := res.Amounts.Get(Key)
			if want := math.Max(0, tt.flour-0.5*tt.discard); flour != want {
				t.Fatalf("flour = %v, want %v", flour, want)
			}
			if want := math.Max(0, tt.water-0.5*tt.discard); water != want {
				t.Fatalf("water = %v, want %v", water, want)
			}
			if sddValue != tt.discard {
				t.Fatalf("sdd = %v, want %v", sddValue, tt.discard)
			}
		})
	}
}

func TestApplyOnlyReducesFirstLiquid(t *testing.T) {
	amounts := recipe.Quantities{{Name: "flour", Value: 500}, {Name: "milk", Value: 100}, {Name: "water", Value: 200}}
	res, err := Apply(amounts, 60, ingredient.DefaultClassifier())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := recipe.Quantities{
		{Name: "flour", Value: 470},
		{Name: "milk", Value: 70},
		{Name: "water", Value: 200},
		{Name: "sdd", Value: 60},
	}
	if diff := cmp.Diff(want, res.Amounts); diff != "" {
		t.Fatalf("amounts mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyWithoutFlourOrLiquidIsSilent(t *testing.T) {
	amounts := recipe.Quantities{{Name: "sugar", Value: 10}}
	res, err := Apply(amounts, 500, ingredient.DefaultClassifier())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.HasFlour || res.Flour != "" {
		t.Fatalf("expected no flour, got %q", res.Flour)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
	want := recipe.Quantities{{Name: "sugar", Value: 10}, {Name: "sdd", Value: 500}}
	if diff := cmp.Diff(want, res.Amounts); diff != "" {
		t.Fatalf("amounts mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsInvalidDiscard(t *testing.T) {
	for _, discard := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Apply(recipe.Quantities{{Name: "flour", Value: 1}}, discard, ingredient.DefaultClassifier())
		if !errors.Is(err, recipe.ErrInvalidNumericInput) {
			t.Fatalf("Apply(%v) error = %v, want ErrInvalidNumericInput", discard, err)
		}
	}
}
