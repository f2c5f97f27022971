package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"levain/internal/optimize"
)

func newOptimizeCommand(ctx *commandContext) *cobra.Command {
	var target float64
	var have []string
	var discard float64
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "optimize <name|letter>",
		Short: "Scale a recipe to a target or to the most your pantry allows",
		Long: "Without --target, servings are maximized from --have amounts; ingredients\n" +
			"without --have are treated as unlimited. --sdd replaces half its weight\n" +
			"of flour and half of liquid with sourdough discard.",
		Example: "  levain optimize A --target 2 --sdd 100\n" +
			"  levain optimize \"Country Loaf\" --have flour=640 --have water=500",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(outputFlag)
			if err != nil {
				return err
			}
			available, err := parseQuantityFlags("have", have)
			if err != nil {
				return err
			}

			req := optimize.Request{
				Mode:      optimize.ModeMaximize,
				Available: available.Map(),
				UseSDD:    cmd.Flags().Changed("sdd"),
				SDD:       discard,
			}
			if cmd.Flags().Changed("target") {
				req.Mode = optimize.ModeTarget
				req.Target = target
			}

			store, err := ctx.openStore(cmd)
			if err != nil {
				return err
			}
			r, err := store.Load().Lookup(args[0])
			if err != nil {
				return err
			}
			optimizer, err := ctx.newOptimizer(cmd)
			if err != nil {
				return err
			}
			res, err := optimizer.Optimize(r, req)
			if err != nil {
				return err
			}

			switch format {
			case outputJSON:
				return writeJSON(cmd, res)
			case outputYAML:
				return writeYAML(cmd, res)
			default:
				out := cmd.OutOrStdout()
				writeResultTable(out, res, shouldColorize(out))
				return nil
			}
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "Scale to this many servings")
	cmd.Flags().StringArrayVar(&have, "have", nil, "Available amount as name=amount (repeatable)")
	cmd.Flags().Float64Var(&discard, "sdd", 0, "Sourdough discard to substitute")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, json, or yaml")
	cmd.MarkFlagsMutuallyExclusive("target", "have")
	return cmd
}

func writeResultTable(out io.Writer, res optimize.Result, colorize bool) {
	if res.Mode == optimize.ModeMaximize {
		fmt.Fprintf(out, "%s: max servings %s\n", res.Recipe, formatServings(res.Servings))
	} else {
		fmt.Fprintf(out, "%s: %s servings\n", res.Recipe, formatServings(res.Servings))
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Ingredient", "Amount"},
		quantityRows(res.Amounts, formatAmount),
		[]columnAlignment{alignLeft, alignRight},
	))
	if res.Hydration != nil {
		fmt.Fprintf(out, "Hydration: %s\n", formatHydration(*res.Hydration))
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(out, renderWarning(w, colorize))
	}
}
