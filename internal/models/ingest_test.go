// ABOUTME: Tests for ingestion request validation
// ABOUTME: Verifies bad batches are rejected before any work starts
package models

import (
	"strings"
	"testing"
)

func TestIngestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     IngestRequest
		wantErr string
	}{
		{
			name:    "empty snippets list",
			req:     IngestRequest{ProjectID: "p1"},
			wantErr: "must not be empty",
		},
		{
			name: "missing name",
			req: IngestRequest{
				ProjectID: "p1",
				Snippets:  []SnippetRequest{{Code: "package main"}},
			},
			wantErr: "name is required",
		},
		{
			name: "whitespace-only code",
			req: IngestRequest{
				ProjectID: "p1",
				Snippets:  []SnippetRequest{{Name: "a", Code: "   \n\t"}},
			},
			wantErr: "code must not be empty",
		},
		{
			name: "second snippet invalid fails whole batch",
			req: IngestRequest{
				ProjectID: "p1",
				Snippets: []SnippetRequest{
					{Name: "ok", Code: "fmt.Println(1)"},
					{Name: "bad", Code: ""},
				},
			},
			wantErr: "code must not be empty",
		},
		{
			name: "valid batch",
			req: IngestRequest{
				ProjectID: "p1",
				Snippets: []SnippetRequest{
					{Name: "a", Code: "x := 1"},
					{Name: "b", Code: "y := 2", Language: "go"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestSnippetHasEmbedding(t *testing.T) {
	s := &Snippet{ID: "a"}
	if s.HasEmbedding() {
		t.Error("HasEmbedding() = true for snippet without vector")
	}
	s.Embedding = []float64{0.1, 0.2}
	if !s.HasEmbedding() {
		t.Error("HasEmbedding() = false for snippet with vector")
	}
}
