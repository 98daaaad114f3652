// Package recipe defines the recipe domain types and the read-only text
// analyses performed on recipe steps: duration extraction, criticality
// classification, and reminder derivation.
package recipe

import (
	"os"

	"gopkg.in/yaml.v3"

	"souschef/internal/errors"
)

// Recipe represents a complete cooking recipe.
type Recipe struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Servings    int          `yaml:"servings"`
	Ingredients []Ingredient `yaml:"ingredients,omitempty"`
	Steps       []string     `yaml:"steps"`
	Tags        []string     `yaml:"tags,omitempty"`
}

// Ingredient represents a single ingredient with human-style quantities.
type Ingredient struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit,omitempty"` // "g", "cups", "tbsp", "" for pieces
	Optional bool    `yaml:"optional,omitempty"`
}

// ServingMultipliers is the fixed set of supported serving-size multipliers.
var ServingMultipliers = []float64{0.5, 1, 1.5, 2, 3}

// ValidMultiplier reports whether m is one of the supported multipliers.
func ValidMultiplier(m float64) bool {
	for _, v := range ServingMultipliers {
		if v == m {
			return true
		}
	}
	return false
}

// ScaledIngredients returns a copy of the recipe's ingredients with every
// quantity scaled by the given multiplier. The receiver is not modified.
func (r *Recipe) ScaledIngredients(multiplier float64) []Ingredient {
	scaled := make([]Ingredient, len(r.Ingredients))
	copy(scaled, r.Ingredients)
	for i := range scaled {
		scaled[i].Quantity *= multiplier
	}
	return scaled
}

// Validate checks that the recipe is usable for a cooking session.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return errors.NewValidationError("recipe name is required").WithField("name")
	}
	if len(r.Steps) == 0 {
		return errors.NewValidationError("recipe has no steps").WithField("steps")
	}
	for i, step := range r.Steps {
		if step == "" {
			return errors.NewValidationError("empty step instruction").
				WithField("steps").WithValue(i)
		}
	}
	return nil
}

// Load reads and validates a recipe from a YAML file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRecipeError("failed to read recipe file", err).WithPath(path)
	}

	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.NewRecipeError("failed to parse recipe YAML", err).WithPath(path)
	}

	if err := r.Validate(); err != nil {
		return nil, errors.NewRecipeError("invalid recipe", err).WithPath(path)
	}

	return &r, nil
}
