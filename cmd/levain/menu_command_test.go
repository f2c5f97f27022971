package main

import (
	"strings"
	"testing"
)

func menuScript(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenuCreateThenOptimizeWithDiscard(t *testing.T) {
	env := setupCLITestEnv(t)

	script := menuScript(
		"1", "Loaf", "abc", "0", "4",
		"flour", "800", "flour", "water", "-1", "500", "",
		"2", "A", "2", "y", "100", "2",
		"3",
	)
	out, _, err := runCLI(t, env, script, "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}

	requireContains(t, out, "Recipes:\n  (none)")
	requireContains(t, out, "Invalid number, try again.")
	requireContains(t, out, "Value too small.")
	requireContains(t, out, "Already added.")
	requireContains(t, out, "Saved.")
	requireContains(t, out, "=== Loaf ===\nBase servings: 4\n  - flour: 200 per serving\n  - water: 125 per serving")
	requireContains(t, out, "  A) Loaf")
	requireContains(t, out, "Amounts:\n  - flour: 350\n  - water: 200\n  - sdd: 100\nHydration: 57.1%")
	requireNotContains(t, out, "Max servings")
}

func TestMenuMaximizeTreatsBlankAsUnlimited(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, menuScript("2", "a", "", "n", "640", "", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Max servings: 3.2\nAmounts:\n  - flour: 640\n  - water: 400\nHydration: 62.5%")
}

func TestMenuMaximizeAllBlankIsUnbounded(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, menuScript("2", "A", "1", "", "", "", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Nothing limits the batch")
}

func TestMenuDiscardWarnings(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, menuScript("2", "A", "2", "Y", "2000", "1", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Warning: SDD exceeds flour; flour reduced to 0")
	requireContains(t, out, "Warning: SDD exceeds liquid; liquid reduced to 0")
	requireNotContains(t, out, "Hydration")
}

func TestMenuLetterShowsRecipe(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, menuScript("a", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "=== Loaf ===")
	requireContains(t, out, "  - water: 125 per serving")
}

func TestMenuRejectsDuplicateName(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	out, _, err := runCLI(t, env, menuScript("1", "Loaf", "1", "  ", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if strings.Count(out, "Invalid or duplicate name.") != 2 {
		t.Fatalf("expected two rejected names:\n%s", out)
	}
	requireNotContains(t, out, "Saved.")
}

func TestMenuInvalidChoices(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, menuScript("2", "9", "3"), "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "No recipes.")
	requireContains(t, out, "Invalid.")
}

func TestMenuExitsOnEndOfInput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedLoaf(t, env)

	for _, script := range []string{"", "2\nA\n", "1\nRye\n4\nflour"} {
		if _, _, err := runCLI(t, env, script, "menu"); err != nil {
			t.Fatalf("menu with input %q: %v", script, err)
		}
	}
}

func TestRootPrintsHelpWithoutTerminal(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, "1\n")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "Usage:")
	requireNotContains(t, out, "Recipes:")
}
