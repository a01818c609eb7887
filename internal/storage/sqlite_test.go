package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndTopSelections(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.RecordSelection("main", "main/terminal"); err != nil {
			t.Fatalf("RecordSelection() failed: %v", err)
		}
	}
	if err := store.RecordSelection("main", "main/files/home"); err != nil {
		t.Fatalf("RecordSelection() failed: %v", err)
	}
	// Different menu
	if err := store.RecordSelection("other", "other/thing"); err != nil {
		t.Fatalf("RecordSelection() failed: %v", err)
	}

	top, err := store.TopSelections("main", 10)
	if err != nil {
		t.Fatalf("TopSelections() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 items, got %d", len(top))
	}
	if top[0].ItemPath != "main/terminal" || top[0].Count != 3 {
		t.Errorf("top[0] = %+v, expected main/terminal with 3 uses", top[0])
	}
	if top[1].ItemPath != "main/files/home" || top[1].Count != 1 {
		t.Errorf("top[1] = %+v, expected main/files/home with 1 use", top[1])
	}

	count, err := store.SelectionCount("main")
	if err != nil {
		t.Fatalf("SelectionCount() failed: %v", err)
	}
	if count != 4 {
		t.Errorf("SelectionCount() = %d, expected 4", count)
	}
}

func TestStoreTopSelectionsEmpty(t *testing.T) {
	store := openTestStore(t)

	top, err := store.TopSelections("main", 10)
	if err != nil {
		t.Fatalf("TopSelections() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("expected no selections, got %v", top)
	}
}

func TestStoreSaveAndLoadOrder(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveOrder("main", "main", []string{"b", "a", "c"}); err != nil {
		t.Fatalf("SaveOrder() failed: %v", err)
	}

	labels, err := store.LoadOrder("main", "main")
	if err != nil {
		t.Fatalf("LoadOrder() failed: %v", err)
	}
	expected := []string{"b", "a", "c"}
	if len(labels) != len(expected) {
		t.Fatalf("LoadOrder() = %v, expected %v", labels, expected)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("LoadOrder() = %v, expected %v", labels, expected)
		}
	}

	// Saving again replaces the previous order.
	if err := store.SaveOrder("main", "main", []string{"c", "b", "a"}); err != nil {
		t.Fatalf("SaveOrder() failed: %v", err)
	}
	labels, err = store.LoadOrder("main", "main")
	if err != nil {
		t.Fatalf("LoadOrder() failed: %v", err)
	}
	if len(labels) != 3 || labels[0] != "c" {
		t.Errorf("LoadOrder() after resave = %v", labels)
	}
}

func TestStoreLoadOrderUnknownLevel(t *testing.T) {
	store := openTestStore(t)

	labels, err := store.LoadOrder("main", "main/files")
	if err != nil {
		t.Fatalf("LoadOrder() failed: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("expected no saved order, got %v", labels)
	}
}

func TestStoreOrderIsPerLevel(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveOrder("main", "main", []string{"a", "b"}); err != nil {
		t.Fatalf("SaveOrder() failed: %v", err)
	}
	if err := store.SaveOrder("main", "main/files", []string{"x", "y"}); err != nil {
		t.Fatalf("SaveOrder() failed: %v", err)
	}

	labels, err := store.LoadOrder("main", "main/files")
	if err != nil {
		t.Fatalf("LoadOrder() failed: %v", err)
	}
	if len(labels) != 2 || labels[0] != "x" {
		t.Errorf("LoadOrder(main/files) = %v", labels)
	}
}
