// ABOUTME: Tests for ingest and mcp commands
// ABOUTME: Verifies command structure and path validation

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewIngestCmd(t *testing.T) {
	cmd := NewIngestCmd()

	if !strings.HasPrefix(cmd.Use, "ingest") {
		t.Errorf("Use = %q, want ingest prefix", cmd.Use)
	}
	if cmd.Flags().Lookup("project") == nil {
		t.Error("--project flag not found")
	}
	if cmd.Flags().Lookup("max-bytes") == nil {
		t.Error("--max-bytes flag not found")
	}
}

func TestIngestCmd_RequiresPath(t *testing.T) {
	cmd := NewIngestCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when path argument is missing")
	}
}

func TestIngestCmd_MissingPath(t *testing.T) {
	cmd := NewIngestCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"/nonexistent/path"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for nonexistent path")
	}
	if !strings.Contains(err.Error(), "stat") {
		t.Errorf("error = %v, want stat failure", err)
	}
}

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want %q", cmd.Use, "mcp")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if cmd.Example == "" {
		t.Error("Example should show host configuration")
	}
	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}
}

func TestNewStyleCmd(t *testing.T) {
	cmd := NewStyleCmd()

	if cmd.Use != "style" {
		t.Errorf("Use = %q, want %q", cmd.Use, "style")
	}
	if cmd.Flags().Lookup("focus") == nil {
		t.Error("--focus flag not found")
	}
}

func TestNewWikiCmd(t *testing.T) {
	cmd := NewWikiCmd()

	if cmd.Use != "wiki" {
		t.Errorf("Use = %q, want %q", cmd.Use, "wiki")
	}
	if cmd.Flags().Lookup("focus") == nil {
		t.Error("--focus flag not found")
	}
}
