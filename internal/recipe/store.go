package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"levain/internal/fileutil"
	"levain/internal/logging"
)

const lockRetryDelay = 50 * time.Millisecond

// errUnreadable marks a store file that exists but cannot be used.
var errUnreadable = errors.New("recipe store unreadable")

// Store reads and writes the recipe book file.
type Store struct {
	path   string
	logger *slog.Logger
	lock   *flock.Flock
}

// NewStore returns a handle for the recipe file at path. Nothing is read
// until Load or Create.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "recipe_store"),
		lock:   flock.New(path + ".lock"),
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted book. A missing, unreadable, or malformed file
// yields an empty book; the problem is logged, never returned.
func (s *Store) Load() *Book {
	book, err := s.read()
	if err != nil {
		s.warnUnreadable(err)
		return NewBook()
	}
	return book
}

// Save replaces the backing file with the whole book.
func (s *Store) Save(book *Book) error {
	if book == nil {
		book = NewBook()
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recipe store: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write recipe store: %w", err)
	}
	s.logger.Debug("saved recipe store",
		logging.String(logging.FieldPath, s.path),
		logging.Int("recipe_count", book.Len()))
	return nil
}

// Create normalizes totals to per-serving ratios and persists a new recipe.
// The store is reloaded under an advisory file lock so the read-modify-write
// does not interleave with another levain process.
func (s *Store) Create(ctx context.Context, name string, servings float64, totals Quantities) (Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, fmt.Errorf("%w: name is empty", ErrDuplicateOrInvalidName)
	}
	if err := Positive("servings", servings); err != nil {
		return Recipe{}, err
	}
	ratios, err := toRatios(totals, servings)
	if err != nil {
		return Recipe{}, err
	}
	created := Recipe{Name: name, Servings: servings, Ingredients: ratios}

	unlock, err := s.acquire(ctx)
	if err != nil {
		return Recipe{}, err
	}
	defer unlock()

	book, err := s.read()
	if err != nil {
		s.warnUnreadable(err)
		s.backup()
		book = NewBook()
	}
	if err := book.Add(created); err != nil {
		return Recipe{}, err
	}
	if err := s.Save(book); err != nil {
		return Recipe{}, err
	}

	s.logger.Info("recipe created",
		logging.String(logging.FieldRecipe, name),
		logging.Float64("servings", servings),
		logging.Int("ingredient_count", len(ratios)))
	return created, nil
}

func toRatios(totals Quantities, servings float64) (Quantities, error) {
	ratios := make(Quantities, 0, len(totals))
	for _, item := range totals {
		ingredient := strings.TrimSpace(item.Name)
		if ingredient == "" {
			return nil, fmt.Errorf("%w: name is empty", ErrInvalidIngredient)
		}
		if ratios.Has(ingredient) {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidIngredient, ingredient)
		}
		if err := NonNegative("amount of "+ingredient, item.Value); err != nil {
			return nil, err
		}
		ratios = append(ratios, Quantity{Name: ingredient, Value: item.Value / servings})
	}
	return ratios, nil
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock recipe store: %w", err)
	}
	if !locked {
		return nil, errors.New("lock recipe store: lock not acquired")
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release recipe store lock", logging.Error(err))
		}
	}, nil
}

func (s *Store) read() (*Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewBook(), nil
		}
		return nil, fmt.Errorf("%w: %w", errUnreadable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewBook(), nil
	}
	book := NewBook()
	if err := json.Unmarshal(data, book); err != nil {
		return nil, fmt.Errorf("%w: %w", errUnreadable, err)
	}
	s.logger.Debug("loaded recipe store",
		logging.String(logging.FieldPath, s.path),
		logging.Int("recipe_count", book.Len()))
	return book, nil
}

func (s *Store) warnUnreadable(err error) {
	logging.WarnWithContext(s.logger, "recipe store unreadable", "recipe_store_unreadable",
		logging.String(logging.FieldPath, s.path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "fix the JSON or move the file aside"),
		logging.String(logging.FieldImpact, "recipes treated as empty"))
}

// backup copies an unusable store aside before Create overwrites it.
func (s *Store) backup() {
	target := s.path + ".corrupt"
	if err := fileutil.CopyFile(s.path, target); err != nil {
		s.logger.Warn("failed to back up unreadable recipe store",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err))
		return
	}
	s.logger.Info("backed up unreadable recipe store", logging.String(logging.FieldPath, target))
}
