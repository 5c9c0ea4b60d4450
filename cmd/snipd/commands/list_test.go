// ABOUTME: Tests for list command
// ABOUTME: Verifies command structure and end-to-end listing against a temp database

package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snipd/snipd/internal/models"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

func TestNewListCmd(t *testing.T) {
	cmd := NewListCmd()

	if cmd.Use != "list" {
		t.Errorf("Use = %q, want %q", cmd.Use, "list")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Flags().Lookup("project") == nil {
		t.Error("--project flag not found")
	}
}

func TestListCmd_EmptyDatabase(t *testing.T) {
	t.Setenv("SNIPD_DB", filepath.Join(t.TempDir(), "test.db"))
	listProject = ""
	quiet = false
	outputFormat = "auto"

	cmd := NewListCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output.String(), "No snippets found") {
		t.Errorf("output = %q, want empty-database message", output.String())
	}
}

func TestListCmd_ShowsStoredSnippets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv("SNIPD_DB", dbPath)
	listProject = ""
	quiet = false
	outputFormat = "auto"

	store, err := sqlite.NewStorage(dbPath, 3)
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	for _, s := range []*models.Snippet{
		{ID: "auth.go", Name: "auth.go", ProjectID: "p1", Code: "func Login() {}", Type: models.TypeCodeSnippet},
		{ID: "db.go", Name: "db.go", ProjectID: "p2", Code: "func Connect() {}", Type: models.TypeCodeSnippet},
	} {
		if _, err := store.Upsert(s); err != nil {
			t.Fatalf("seeding snippet: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("closing storage: %v", err)
	}

	cmd := NewListCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	for _, want := range []string{"auth.go", "db.go", "p1", "p2", "Total: 2"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("output missing %q:\n%s", want, outputStr)
		}
	}
}

func TestListCmd_ProjectScoped(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv("SNIPD_DB", dbPath)
	quiet = false
	outputFormat = "auto"

	store, err := sqlite.NewStorage(dbPath, 3)
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	for _, s := range []*models.Snippet{
		{ID: "a", Name: "a", ProjectID: "p1", Code: "x", Type: models.TypeCodeSnippet},
		{ID: "b", Name: "b", ProjectID: "p2", Code: "y", Type: models.TypeCodeSnippet},
	} {
		if _, err := store.Upsert(s); err != nil {
			t.Fatalf("seeding snippet: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("closing storage: %v", err)
	}

	cmd := NewListCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--project", "p1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "Total: 1") {
		t.Errorf("output = %q, want single result for p1", outputStr)
	}
	if strings.Contains(outputStr, "p2") {
		t.Errorf("output should not contain other project's snippets:\n%s", outputStr)
	}
}
