package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	source := "name: my-scene\ntheme: cyber\n"
	if _, err := store.SaveScenario("my-scene", "cyber", source); err != nil {
		t.Fatalf("SaveScenario() failed: %v", err)
	}

	entry, err := store.GetScenario("my-scene")
	if err != nil {
		t.Fatalf("GetScenario() failed: %v", err)
	}
	if entry.Name != "my-scene" || entry.Theme != "cyber" {
		t.Errorf("entry = %+v, expected name my-scene theme cyber", entry)
	}
	// The document round-trips verbatim
	if entry.Source != source {
		t.Errorf("Source = %q, expected %q", entry.Source, source)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetScenario("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetScenario() = %v, expected ErrNotFound", err)
	}
}

func TestStoreSaveUpserts(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScenario("scene", "space", "v1"); err != nil {
		t.Fatalf("SaveScenario() failed: %v", err)
	}
	if _, err := store.SaveScenario("scene", "forest", "v2"); err != nil {
		t.Fatalf("SaveScenario() (second) failed: %v", err)
	}

	entry, err := store.GetScenario("scene")
	if err != nil {
		t.Fatalf("GetScenario() failed: %v", err)
	}
	if entry.Theme != "forest" || entry.Source != "v2" {
		t.Errorf("entry = %+v, expected updated theme forest source v2", entry)
	}

	entries, err := store.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, expected 1 after upsert", len(entries))
	}
}

func TestStoreListSortedByName(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.SaveScenario(name, "space", "doc"); err != nil {
			t.Fatalf("SaveScenario(%q) failed: %v", name, err)
		}
	}

	entries, err := store.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, expected 3", len(entries))
	}
	if entries[0].Name != "alpha" || entries[1].Name != "mid" || entries[2].Name != "zeta" {
		t.Errorf("entries out of order: %v, %v, %v", entries[0].Name, entries[1].Name, entries[2].Name)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScenario("doomed", "space", "doc"); err != nil {
		t.Fatalf("SaveScenario() failed: %v", err)
	}
	if err := store.DeleteScenario("doomed"); err != nil {
		t.Fatalf("DeleteScenario() failed: %v", err)
	}

	if _, err := store.GetScenario("doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetScenario() after delete = %v, expected ErrNotFound", err)
	}

	// Deleting a missing scenario reports not found
	if err := store.DeleteScenario("doomed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteScenario() on missing = %v, expected ErrNotFound", err)
	}
}
