// Package pantry persists the cook's ingredient stock in a YAML file and
// serves as the session's ingredient deduction backend.
package pantry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"souschef/internal/errors"
	"souschef/internal/logging"
	"souschef/internal/recipe"
)

// Item is one stocked ingredient. Quantities are in the ingredient's own
// unit; the store does no unit conversion and only deducts when the units
// match.
type Item struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit,omitempty"`
}

type pantryFile struct {
	Items []Item `yaml:"items"`
}

// Store is a file-backed pantry. It satisfies the session controller's
// deduction gateway: deductions apply in memory first and persist with an
// atomic rename, so a failed write leaves the file untouched and the
// deduction retryable.
type Store struct {
	path   string
	logger *logging.Logger

	mu    sync.Mutex
	items []Item
}

// Open loads the pantry file at path, creating an empty store when the
// file does not exist yet.
func Open(path string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read pantry file %s", path)
	}

	var f pantryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse pantry file %s", path)
	}
	s.items = f.Items

	logger.Debug("pantry loaded", "path", path, "items", len(s.items))
	return s, nil
}

// Items returns a copy of the current stock.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Add merges quantity into the named item's stock, creating it if absent.
func (s *Store) Add(name string, quantity float64, unit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeName(name)
	if key == "" {
		return errors.NewValidationError("ingredient name must not be empty").
			WithField("name")
	}
	if quantity <= 0 {
		return errors.NewValidationError("quantity must be positive").
			WithField("quantity").WithValue(quantity)
	}

	for i := range s.items {
		if normalizeName(s.items[i].Name) == key && unitsMatch(s.items[i].Unit, unit) {
			next := append([]Item(nil), s.items...)
			next[i].Quantity += quantity
			return s.persist(next)
		}
	}

	next := append(append([]Item(nil), s.items...), Item{
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Unit:     strings.TrimSpace(unit),
	})
	return s.persist(next)
}

// Deduct removes the given ingredients from stock. Ingredients not in the
// pantry, and ingredients whose units do not match, are skipped rather than
// failed: the cook may well have bought them loose. Stock never goes below
// zero. The whole deduction persists atomically or not at all.
func (s *Store) Deduct(ctx context.Context, ingredients []recipe.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.NewGatewayError("deduction canceled", err)
	}

	next := append([]Item(nil), s.items...)
	deducted := 0
	for _, ing := range ingredients {
		key := normalizeName(ing.Name)
		for i := range next {
			if normalizeName(next[i].Name) != key || !unitsMatch(next[i].Unit, ing.Unit) {
				continue
			}
			next[i].Quantity -= ing.Quantity
			if next[i].Quantity < 0 {
				next[i].Quantity = 0
			}
			deducted++
			break
		}
	}

	if err := s.persist(next); err != nil {
		return errors.NewGatewayError("persist pantry", err)
	}

	s.logger.Info("pantry deducted",
		"requested", len(ingredients), "matched", deducted)
	return nil
}

// persist writes items to disk via a temp file and rename, then installs
// them as the in-memory state. Caller holds the mutex.
func (s *Store) persist(items []Item) error {
	data, err := yaml.Marshal(pantryFile{Items: items})
	if err != nil {
		return errors.Wrap(err, "encode pantry")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create pantry dir")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write pantry file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "replace pantry file")
	}

	s.items = items
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// unitsMatch treats empty units as wildcards so count-based ingredients
// ("2 eggs") match regardless of labeling.
func unitsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return a == "" || b == "" || a == b
}

// String summarizes the store for logs.
func (s *Store) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("pantry(%s, %d items)", s.path, len(s.items))
}
