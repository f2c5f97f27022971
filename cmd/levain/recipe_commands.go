package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"levain/internal/recipe"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored recipes with their menu letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			book := store.Load()
			out := cmd.OutOrStdout()
			if book.Len() == 0 {
				fmt.Fprintln(out, "No recipes.")
				return nil
			}
			rows := make([][]string, 0, book.Len())
			for i, r := range book.Recipes() {
				rows = append(rows, []string{
					recipe.Letter(i),
					r.Name,
					formatServings(r.Servings),
					strconv.Itoa(len(r.Ingredients)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"", "Recipe", "Servings", "Ingredients"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|letter>",
		Short: "Show a recipe's per-serving ratios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			r, err := store.Load().Lookup(args[0])
			if err != nil {
				return err
			}
			writeRecipeTable(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var servings float64
	var ingredients []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a recipe from total amounts for a batch",
		Long: "Create a recipe from the total amount of each ingredient in a batch of\n" +
			"--servings servings. Amounts are stored per serving.",
		Example: "  levain create \"Country Loaf\" --servings 4 --ingredient flour=800 --ingredient water=500",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := parseQuantityFlags("ingredient", ingredients)
			if err != nil {
				return err
			}
			store, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			created, err := store.Create(cmd.Context(), args[0], servings, totals)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSaved(fmt.Sprintf("Saved %s.", created.Name), shouldColorize(out)))
			writeRecipeTable(out, created)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&servings, "servings", "s", 0, "Servings the totals make")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "Ingredient total as name=amount (repeatable, order kept)")
	_ = cmd.MarkFlagRequired("servings")
	return cmd
}

func writeRecipeTable(out io.Writer, r recipe.Recipe) {
	fmt.Fprintf(out, "%s (base servings %s)\n", r.Name, formatServings(r.Servings))
	if len(r.Ingredients) == 0 {
		fmt.Fprintln(out, "No ingredients.")
		return
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Ingredient", "Per serving"},
		quantityRows(r.Ingredients, formatAmount),
		[]columnAlignment{alignLeft, alignRight},
	))
}

// parseQuantityFlags reads name=amount pairs in order. The last '=' splits,
// so names may contain '='.
func parseQuantityFlags(flag string, values []string) (recipe.Quantities, error) {
	out := make(recipe.Quantities, 0, len(values))
	for _, raw := range values {
		idx := strings.LastIndex(raw, "=")
		if idx < 0 {
			return nil, fmt.Errorf("--%s %q: want name=amount", flag, raw)
		}
		name := strings.TrimSpace(raw[:idx])
		if name == "" {
			return nil, fmt.Errorf("--%s %q: %w: name is empty", flag, raw, recipe.ErrInvalidIngredient)
		}
		if out.Has(name) {
			return nil, fmt.Errorf("--%s %q: %w: %q listed twice", flag, raw, recipe.ErrInvalidIngredient, name)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s %q: %w: %q is not a number", flag, raw, recipe.ErrInvalidNumericInput, raw[idx+1:])
		}
		out = append(out, recipe.Quantity{Name: name, Value: value})
	}
	return out, nil
}
