package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Recipe is a named set of per-serving ingredient ratios.
type Recipe struct {
	Name string
	// Servings is the base serving count the ratios were derived from.
	Servings float64
	// Ingredients maps ingredient name to amount per serving.
	Ingredients Quantities
}

// record is the on-disk shape of a recipe; the name is the enclosing key.
type record struct {
	Servings    float64    `json:"servings"`
	Ingredients Quantities `json:"ingredients"`
}

// Book is the ordered set of recipes held by a store.
type Book struct {
	recipes []Recipe
}

// NewBook returns a book holding recipes in the given order. Later duplicates
// replace earlier entries in place.
func NewBook(recipes ...Recipe) *Book {
	b := &Book{}
	for _, r := range recipes {
		b.put(r)
	}
	return b
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.recipes)
}

// Recipes returns the recipes in insertion order.
func (b *Book) Recipes() []Recipe {
	if b == nil {
		return nil
	}
	out := make([]Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Names returns recipe names in insertion order.
func (b *Book) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.recipes))
	for _, r := range b.recipes {
		names = append(names, r.Name)
	}
	return names
}

// Get returns the recipe with the exact name.
func (b *Book) Get(name string) (Recipe, bool) {
	if b == nil {
		return Recipe{}, false
	}
	for _, r := range b.recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}

// Add appends a recipe, rejecting empty and duplicate names.
func (b *Book) Add(r Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrDuplicateOrInvalidName)
	}
	if _, exists := b.Get(r.Name); exists {
		return fmt.Errorf("%w: %q already exists", ErrDuplicateOrInvalidName, r.Name)
	}
	b.recipes = append(b.recipes, r)
	return nil
}

func (b *Book) put(r Recipe) {
	for i := range b.recipes {
		if b.recipes[i].Name == r.Name {
			b.recipes[i] = r
			return
		}
	}
	b.recipes = append(b.recipes, r)
}

// menuLetters bounds the lettered menu to A-Z.
const menuLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letter returns the menu letter for the recipe at index, or "" past Z.
func Letter(index int) string {
	if index < 0 || index >= len(menuLetters) {
		return ""
	}
	return menuLetters[index : index+1]
}

// Lookup resolves key as an exact recipe name first, then as a menu letter.
func (b *Book) Lookup(key string) (Recipe, error) {
	key = strings.TrimSpace(key)
	if r, ok := b.Get(key); ok {
		return r, nil
	}
	if r, ok := b.ByLetter(key); ok {
		return r, nil
	}
	return Recipe{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, key)
}

// ByLetter returns the recipe shown under a menu letter, case-insensitive.
func (b *Book) ByLetter(letter string) (Recipe, bool) {
	letter = strings.TrimSpace(letter)
	if len(letter) != 1 {
		return Recipe{}, false
	}
	idx := strings.Index(menuLetters, strings.ToUpper(letter))
	if idx < 0 || idx >= b.Len() {
		return Recipe{}, false
	}
	return b.recipes[idx], true
}

// MarshalJSON encodes the book as an object keyed by recipe name.
func (b *Book) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range b.Recipes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, err
		}
		ingredients := r.Ingredients
		if ingredients == nil {
			ingredients = Quantities{}
		}
		body, err := json.Marshal(record{Servings: r.Servings, Ingredients: ingredients})
		if err != nil {
			return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of recipe records, keeping key order.
func (b *Book) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("recipe book: %w", err)
	}
	out := &Book{}
	for dec.More() {
		name, err := objectKey(dec)
		if err != nil {
			return fmt.Errorf("recipe book: %w", err)
		}
		var rec record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("recipe %q: %w", name, err)
		}
		out.put(Recipe{Name: name, Servings: rec.Servings, Ingredients: rec.Ingredients})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("recipe book: %w", err)
	}
	*b = *out
	return nil
}
