// ABOUTME: Tests for database lifecycle and schema initialization
// ABOUTME: Verifies file-backed open, in-memory open, and reopen persistence
package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/snipd/snipd/internal/models"
)

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snippets.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	// Schema must be queryable immediately
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM snippets").Scan(&count); err != nil {
		t.Fatalf("querying snippets table: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh table row count = %d, want 0", count)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.db")

	store, err := NewStorage(path, 3)
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}
	if _, err := store.Upsert(&models.Snippet{
		ID: "a", Name: "a", ProjectID: "p1", Code: "x", Embedding: []float64{1, 0, 0},
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewStorage(path, 3)
	if err != nil {
		t.Fatalf("reopen NewStorage() error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	snip, err := reopened.GetByID("a")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if snip == nil || snip.Code != "x" {
		t.Errorf("GetByID() after reopen = %+v, want stored snippet", snip)
	}
}

func TestOpenInMemory(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != ":memory:" {
		t.Errorf("Path() = %q, want :memory:", db.Path())
	}
}
