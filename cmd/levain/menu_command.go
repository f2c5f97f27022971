package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"levain/internal/optimize"
	"levain/internal/recipe"
	"levain/internal/scale"
)

const minServings = 0.0001

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive recipe menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, ctx)
		},
	}
}

func runMenu(cmd *cobra.Command, ctx *commandContext) error {
	store, err := ctx.openStore(cmd)
	if err != nil {
		return err
	}
	optimizer, err := ctx.newOptimizer(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	m := &menu{
		ctx:       cmd.Context(),
		in:        bufio.NewReader(cmd.InOrStdin()),
		out:       out,
		store:     store,
		optimizer: optimizer,
		colorize:  shouldColorize(out),
	}
	return m.run()
}

// menu is the lettered interactive shell. End of input leaves it cleanly.
type menu struct {
	ctx       context.Context
	in        *bufio.Reader
	out       io.Writer
	store     *recipe.Store
	optimizer *optimize.Optimizer
	colorize  bool
}

func (m *menu) run() error {
	err := m.loop()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

func (m *menu) loop() error {
	for {
		book := m.store.Load()
		m.printRecipes(book)
		fmt.Fprintln(m.out, "\n1) Create recipe\n2) Optimize recipe\n3) Exit")
		choice, err := m.readLine("Choose: ")
		if err != nil {
			return err
		}
		choice = strings.ToUpper(choice)

		if r, ok := book.ByLetter(choice); ok {
			m.printRecipe(r)
			continue
		}
		switch choice {
		case "1":
			err = m.create(book)
		case "2":
			if book.Len() == 0 {
				fmt.Fprintln(m.out, "No recipes.")
				continue
			}
			err = m.optimize(book)
		case "3":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) printRecipes(book *recipe.Book) {
	fmt.Fprintln(m.out, "\nRecipes:")
	if book.Len() == 0 {
		fmt.Fprintln(m.out, "  (none)")
		return
	}
	for i, name := range book.Names() {
		letter := recipe.Letter(i)
		if letter == "" {
			break
		}
		fmt.Fprintf(m.out, "  %s) %s\n", letter, name)
	}
}

func (m *menu) printRecipe(r recipe.Recipe) {
	fmt.Fprintf(m.out, "\n=== %s ===\n", r.Name)
	fmt.Fprintf(m.out, "Base servings: %s\n", strconv.FormatFloat(r.Servings, 'f', -1, 64))
	for _, item := range r.Ingredients {
		fmt.Fprintf(m.out, "  - %s: %s per serving\n", item.Name, formatAmount(item.Value))
	}
	fmt.Fprintln(m.out)
}

func (m *menu) create(book *recipe.Book) error {
	name, err := m.readLine("Recipe name: ")
	if err != nil {
		return err
	}
	if _, exists := book.Get(name); name == "" || exists {
		fmt.Fprintln(m.out, "Invalid or duplicate name.")
		return nil
	}

	servings, err := m.readFloat("Servings: ", minServings)
	if err != nil {
		return err
	}

	totals := recipe.Quantities{}
	fmt.Fprintln(m.out, "Add ingredients (ENTER to finish)")
	for {
		ingredient, err := m.readLine("Ingredient name: ")
		if err != nil {
			return err
		}
		if ingredient == "" {
			break
		}
		if totals.Has(ingredient) {
			fmt.Fprintln(m.out, "Already added.")
			continue
		}
		amount, err := m.readFloat(fmt.Sprintf("Total amount of %s: ", ingredient), 0)
		if err != nil {
			return err
		}
		totals.Set(ingredient, amount)
	}

	created, err := m.store.Create(m.ctx, name, servings, totals)
	switch {
	case errors.Is(err, recipe.ErrDuplicateOrInvalidName):
		fmt.Fprintln(m.out, "Invalid or duplicate name.")
		return nil
	case err != nil:
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(m.out, renderSaved("Saved.", m.colorize))
	m.printRecipe(created)
	return nil
}

func (m *menu) optimize(book *recipe.Book) error {
	letter, err := m.readLine("Recipe letter: ")
	if err != nil {
		return err
	}
	r, ok := book.ByLetter(letter)
	if !ok {
		fmt.Fprintln(m.out, "Invalid.")
		return nil
	}
	m.printRecipe(r)

	fmt.Fprintln(m.out, "1) Maximize")
	fmt.Fprintln(m.out, "2) Target servings")
	choice, err := m.readLine("Choose [1]: ")
	if err != nil {
		return err
	}
	mode, err := optimize.ParseMode(choice)
	if err != nil {
		mode = optimize.ModeMaximize
	}

	req := optimize.Request{Mode: mode}
	answer, err := m.readLine("Use SDD? [y/N]: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		req.UseSDD = true
		if req.SDD, err = m.readFloat("SDD amount: ", 0); err != nil {
			return err
		}
	}

	if mode == optimize.ModeTarget {
		if req.Target, err = m.readFloat("Target servings: ", minServings); err != nil {
			return err
		}
	} else {
		req.Available = make(map[string]float64, len(r.Ingredients))
		for _, item := range r.Ingredients {
			v, err := m.readOptionalFloat(fmt.Sprintf("%s you have (ENTER = inf): ", item.Name), 0)
			if err != nil {
				return err
			}
			req.Available[item.Name] = v
		}
	}

	res, err := m.optimizer.Optimize(r, req)
	switch {
	case errors.Is(err, scale.ErrUnbounded):
		fmt.Fprintln(m.out, "Nothing limits the batch; enter at least one amount you have.")
		return nil
	case err != nil:
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	m.printResult(res)
	return nil
}

func (m *menu) printResult(res optimize.Result) {
	if res.Mode == optimize.ModeMaximize {
		fmt.Fprintf(m.out, "Max servings: %s\n", formatServings(res.Servings))
	}
	fmt.Fprintln(m.out, "Amounts:")
	for _, item := range res.Amounts {
		fmt.Fprintf(m.out, "  - %s: %s\n", item.Name, formatAmount(item.Value))
	}
	if res.Hydration != nil {
		fmt.Fprintf(m.out, "Hydration: %s\n", formatHydration(*res.Hydration))
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(m.out, renderWarning(w, m.colorize))
	}
}

// readLine prompts and returns the trimmed reply. io.EOF is returned only
// when no further input exists.
func (m *menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readFloat prompts until a finite number of at least floor is entered.
func (m *menu) readFloat(prompt string, floor float64) (float64, error) {
	return m.readNumber(prompt, floor, false)
}

// readOptionalFloat is readFloat where a blank reply means unlimited.
func (m *menu) readOptionalFloat(prompt string, floor float64) (float64, error) {
	return m.readNumber(prompt, floor, true)
}

func (m *menu) readNumber(prompt string, floor float64, blankIsInf bool) (float64, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if blankIsInf && s == "" {
			return math.Inf(1), nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(m.out, "Invalid number, try again.")
			continue
		}
		if v < floor {
			fmt.Fprintln(m.out, "Value too small.")
			continue
		}
		return v, nil
	}
}
