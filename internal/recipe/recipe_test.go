package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"souschef/internal/errors"
)

const sampleYAML = `name: Weekday Pancakes
description: Quick pancakes for two.
servings: 2
ingredients:
  - name: flour
    quantity: 200
    unit: g
  - name: milk
    quantity: 300
    unit: ml
  - name: blueberries
    quantity: 1
    unit: cup
    optional: true
steps:
  - Whisk the dry ingredients together
  - Stir in the milk and eggs until just combined
  - Rest the batter for 10 minutes
  - Cook each pancake 2 minutes per side
`

func writeRecipe(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing recipe fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "pancakes.yaml", sampleYAML)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if r.Name != "Weekday Pancakes" {
		t.Errorf("Name = %q, want %q", r.Name, "Weekday Pancakes")
	}
	if len(r.Steps) != 4 {
		t.Errorf("len(Steps) = %d, want 4", len(r.Steps))
	}
	if len(r.Ingredients) != 3 {
		t.Errorf("len(Ingredients) = %d, want 3", len(r.Ingredients))
	}
	if !r.Ingredients[2].Optional {
		t.Error("blueberries should be optional")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeRecipe(t, t.TempDir(), "broken.yaml", "steps: [unclosed")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
	var recipeErr *errors.RecipeError
	if !errors.As(err, &recipeErr) {
		t.Errorf("expected RecipeError, got %T", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{"valid", Recipe{Name: "Toast", Steps: []string{"Toast the bread"}}, false},
		{"missing name", Recipe{Steps: []string{"Toast the bread"}}, true},
		{"no steps", Recipe{Name: "Toast"}, true},
		{"empty step", Recipe{Name: "Toast", Steps: []string{"Toast", ""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %T", err)
			}
		})
	}
}

func TestValidMultiplier(t *testing.T) {
	for _, m := range ServingMultipliers {
		if !ValidMultiplier(m) {
			t.Errorf("ValidMultiplier(%v) = false, want true", m)
		}
	}
	for _, m := range []float64{0, 0.25, 2.5, 4, -1} {
		if ValidMultiplier(m) {
			t.Errorf("ValidMultiplier(%v) = true, want false", m)
		}
	}
}

func TestScaledIngredients(t *testing.T) {
	r := Recipe{
		Name:  "Toast",
		Steps: []string{"Toast the bread"},
		Ingredients: []Ingredient{
			{Name: "bread", Quantity: 2},
			{Name: "butter", Quantity: 15, Unit: "g"},
		},
	}

	scaled := r.ScaledIngredients(1.5)
	if scaled[0].Quantity != 3 {
		t.Errorf("bread quantity = %v, want 3", scaled[0].Quantity)
	}
	if scaled[1].Quantity != 22.5 {
		t.Errorf("butter quantity = %v, want 22.5", scaled[1].Quantity)
	}

	// Scaling must not mutate the recipe.
	if r.Ingredients[0].Quantity != 2 {
		t.Errorf("original quantity mutated: %v", r.Ingredients[0].Quantity)
	}
}
