package pantry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"souschef/internal/errors"
	"souschef/internal/recipe"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pantry.yaml")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func stock(t *testing.T, s *Store, name string, qty float64, unit string) {
	t.Helper()
	if err := s.Add(name, qty, unit); err != nil {
		t.Fatalf("Add(%s) error = %v", name, err)
	}
}

func find(items []Item, name string) (Item, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(s.Items()) != 0 {
		t.Errorf("Items() = %v, want empty", s.Items())
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.yaml")
	if err := os.WriteFile(path, []byte("items: [not: valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path, nil); err == nil {
		t.Fatal("Open() accepted a corrupt file")
	}
}

func TestAdd_MergesAndValidates(t *testing.T) {
	s := testStore(t)
	stock(t, s, "flour", 500, "g")
	stock(t, s, "Flour", 250, "g") // case-insensitive merge

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("Items() = %v, want one merged entry", items)
	}
	if items[0].Quantity != 750 {
		t.Errorf("Quantity = %v, want 750", items[0].Quantity)
	}

	if err := s.Add("", 1, ""); !errors.IsValidation(err) {
		t.Errorf("Add with empty name error = %v, want validation error", err)
	}
	if err := s.Add("salt", 0, "g"); !errors.IsValidation(err) {
		t.Errorf("Add with zero quantity error = %v, want validation error", err)
	}
}

func TestDeduct(t *testing.T) {
	s := testStore(t)
	stock(t, s, "spaghetti", 500, "g")
	stock(t, s, "garlic", 6, "cloves")
	stock(t, s, "olive oil", 250, "ml")

	err := s.Deduct(context.Background(), []recipe.Ingredient{
		{Name: "spaghetti", Quantity: 200, Unit: "g"},
		{Name: "garlic", Quantity: 2, Unit: "cloves"},
		{Name: "basil", Quantity: 10, Unit: "g"}, // not stocked: skipped
	})
	if err != nil {
		t.Fatalf("Deduct() error = %v", err)
	}

	items := s.Items()
	if it, _ := find(items, "spaghetti"); it.Quantity != 300 {
		t.Errorf("spaghetti = %v, want 300", it.Quantity)
	}
	if it, _ := find(items, "garlic"); it.Quantity != 4 {
		t.Errorf("garlic = %v, want 4", it.Quantity)
	}
	if it, _ := find(items, "olive oil"); it.Quantity != 250 {
		t.Errorf("olive oil = %v, want untouched 250", it.Quantity)
	}
}

func TestDeduct_ClampsAtZero(t *testing.T) {
	s := testStore(t)
	stock(t, s, "butter", 50, "g")

	err := s.Deduct(context.Background(), []recipe.Ingredient{
		{Name: "butter", Quantity: 200, Unit: "g"},
	})
	if err != nil {
		t.Fatalf("Deduct() error = %v", err)
	}
	if it, _ := find(s.Items(), "butter"); it.Quantity != 0 {
		t.Errorf("butter = %v, want clamped to 0", it.Quantity)
	}
}

func TestDeduct_UnitMismatchSkipped(t *testing.T) {
	s := testStore(t)
	stock(t, s, "milk", 1000, "ml")

	err := s.Deduct(context.Background(), []recipe.Ingredient{
		{Name: "milk", Quantity: 2, Unit: "cups"},
	})
	if err != nil {
		t.Fatalf("Deduct() error = %v", err)
	}
	if it, _ := find(s.Items(), "milk"); it.Quantity != 1000 {
		t.Errorf("milk = %v, mismatched units must not deduct", it.Quantity)
	}
}

func TestDeduct_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.yaml")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	stock(t, s, "rice", 1000, "g")

	if err := s.Deduct(context.Background(), []recipe.Ingredient{
		{Name: "rice", Quantity: 300, Unit: "g"},
	}); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if it, _ := find(reopened.Items(), "rice"); it.Quantity != 700 {
		t.Errorf("rice after reopen = %v, want 700", it.Quantity)
	}
}

func TestDeduct_CanceledContext(t *testing.T) {
	s := testStore(t)
	stock(t, s, "rice", 1000, "g")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Deduct(ctx, []recipe.Ingredient{{Name: "rice", Quantity: 100, Unit: "g"}})
	if err == nil {
		t.Fatal("Deduct() succeeded with canceled context")
	}
	if !errors.IsRetryable(err) {
		t.Errorf("error %v should be retryable", err)
	}
	if it, _ := find(s.Items(), "rice"); it.Quantity != 1000 {
		t.Errorf("rice = %v, canceled deduction must not apply", it.Quantity)
	}
}

func TestDeduct_WriteFailureLeavesStateUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pantry.yaml")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	stock(t, s, "rice", 1000, "g")

	// Make the directory unwritable so the temp file cannot be created.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	err = s.Deduct(context.Background(), []recipe.Ingredient{
		{Name: "rice", Quantity: 100, Unit: "g"},
	})
	if err == nil {
		t.Fatal("Deduct() succeeded despite unwritable directory")
	}
	if !errors.IsRetryable(err) {
		t.Errorf("error %v should be retryable", err)
	}
	if it, _ := find(s.Items(), "rice"); it.Quantity != 1000 {
		t.Errorf("rice = %v, failed deduction must not apply in memory", it.Quantity)
	}
}
