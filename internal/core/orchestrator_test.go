// ABOUTME: Tests for the ingestion orchestrator's fan-out/fan-in cycle
// ABOUTME: Covers validation, aggregation, partial failure, and replay safety
package core

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/snipd/snipd/internal/models"
)

// fakeEmbedder returns a fixed-dimension vector derived from the text,
// failing for any text containing "FAIL". Call counting is safe under the
// orchestrator's concurrent fan-out.
type fakeEmbedder struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeEmbedder) GenerateEmbedding(text string) ([]float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if strings.Contains(text, "FAIL") {
		return nil, fmt.Errorf("embedding backend unavailable")
	}
	return []float64{float64(len(text)), 1.0}, nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStore records upserts and fails for snippet names in failNames
type fakeStore struct {
	mu        sync.Mutex
	upserts   []*models.Snippet
	failNames map[string]bool
}

func (f *fakeStore) Upsert(s *models.Snippet) (*models.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNames[s.Name] {
		return nil, fmt.Errorf("store unavailable")
	}
	f.upserts = append(f.upserts, s)
	return s, nil
}

func newTestOrchestrator(t *testing.T, embedder *fakeEmbedder, store *fakeStore, chunkSize int) *Orchestrator {
	t.Helper()
	chunker, err := NewChunker(chunkSize)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}
	return NewOrchestrator(embedder, store, chunker, "default-project")
}

func TestRun_ValidationRejectsBeforeAnyWork(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	o := newTestOrchestrator(t, embedder, store, 4)

	tests := []*models.IngestRequest{
		{ProjectID: "p", Snippets: nil},
		{ProjectID: "p", Snippets: []models.SnippetRequest{{Name: "", Code: "x"}}},
		{ProjectID: "p", Snippets: []models.SnippetRequest{{Name: "a", Code: "  "}}},
	}

	for _, req := range tests {
		if _, err := o.Run(req); err == nil {
			t.Errorf("Run(%+v) error = nil, want validation error", req)
		}
	}

	if embedder.callCount() != 0 {
		t.Errorf("embedder called %d times for invalid batches, want 0", embedder.callCount())
	}
	if len(store.upserts) != 0 {
		t.Errorf("store received %d upserts for invalid batches, want 0", len(store.upserts))
	}
}

func TestRun_SingleSnippetFanOut(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	o := newTestOrchestrator(t, embedder, store, 4)

	// 10 characters with chunk size 4: chunks of length 4, 4, 2
	req := &models.IngestRequest{
		ProjectID: "p1",
		Snippets:  []models.SnippetRequest{{Name: "greet", Code: "abcdefghij", Language: "go"}},
	}

	result, err := o.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.InstanceID == "" {
		t.Error("InstanceID not assigned")
	}
	if result.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed", result.Status)
	}
	if len(result.Results) != 1 || !result.Results[0].OK {
		t.Fatalf("Results = %+v, want one OK slot", result.Results)
	}
	if result.Results[0].ID != "greet" {
		t.Errorf("Result ID = %q, want greet", result.Results[0].ID)
	}

	if embedder.callCount() != 3 {
		t.Errorf("embedder called %d times, want 3 (one per chunk)", embedder.callCount())
	}

	if len(store.upserts) != 1 {
		t.Fatalf("store received %d upserts, want 1", len(store.upserts))
	}
	stored := store.upserts[0]
	if stored.ProjectID != "p1" || stored.Type != models.TypeCodeSnippet {
		t.Errorf("stored snippet = %+v, want project p1 type code-snippet", stored)
	}
	if stored.Language != "go" {
		t.Errorf("stored language = %q, want go", stored.Language)
	}

	// Mean of [4,1], [4,1], [2,1] is [10/3, 1]
	want := []float64{10.0 / 3.0, 1.0}
	if len(stored.Embedding) != 2 {
		t.Fatalf("embedding length = %d, want 2", len(stored.Embedding))
	}
	for i := range want {
		if math.Abs(stored.Embedding[i]-want[i]) > 1e-12 {
			t.Errorf("embedding[%d] = %v, want %v", i, stored.Embedding[i], want[i])
		}
	}
}

func TestRun_BatchPartialFailure(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{failNames: map[string]bool{"second": true}}
	o := newTestOrchestrator(t, embedder, store, 16)

	req := &models.IngestRequest{
		ProjectID: "p1",
		Snippets: []models.SnippetRequest{
			{Name: "first", Code: "aaa"},
			{Name: "second", Code: "bbb"},
		},
	}

	result, err := o.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("Results length = %d, want 2", len(result.Results))
	}
	if !result.Results[0].OK || result.Results[0].ID != "first" {
		t.Errorf("Results[0] = %+v, want {OK:true ID:first}", result.Results[0])
	}
	if result.Results[1].OK || result.Results[1].Error == "" {
		t.Errorf("Results[1] = %+v, want {OK:false Error:...}", result.Results[1])
	}
}

func TestRun_EmbeddingFailureDegradesToEmptyVector(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	o := newTestOrchestrator(t, embedder, store, 4)

	// Second chunk ("FAIL") errors; the snippet is still persisted, with
	// an empty embedding since the aggregation cannot complete.
	req := &models.IngestRequest{
		ProjectID: "p1",
		Snippets:  []models.SnippetRequest{{Name: "partial", Code: "goodFAILgood"}},
	}

	result, err := o.Run(req)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Results[0].OK {
		t.Fatalf("Results[0] = %+v, want OK", result.Results[0])
	}
	if len(store.upserts) != 1 {
		t.Fatalf("store received %d upserts, want 1", len(store.upserts))
	}
	if store.upserts[0].HasEmbedding() {
		t.Errorf("stored embedding = %v, want empty after chunk failure", store.upserts[0].Embedding)
	}
}

func TestRun_EmptyProjectFallsBackToDefault(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	o := newTestOrchestrator(t, embedder, store, 16)

	req := &models.IngestRequest{
		Snippets: []models.SnippetRequest{{Name: "a", Code: "xyz"}},
	}
	if _, err := o.Run(req); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.upserts[0].ProjectID != "default-project" {
		t.Errorf("ProjectID = %q, want default-project", store.upserts[0].ProjectID)
	}
}

func TestRunWithJournal_ReplayShortCircuits(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{}
	o := newTestOrchestrator(t, embedder, store, 4)

	req := &models.IngestRequest{
		ProjectID: "p1",
		Snippets:  []models.SnippetRequest{{Name: "a", Code: "abcdefgh"}},
	}

	journal := NewJournal()
	first, err := o.RunWithJournal(req, journal)
	if err != nil {
		t.Fatalf("RunWithJournal() error = %v", err)
	}
	embedCalls := embedder.callCount()
	upserts := len(store.upserts)

	// Re-executing with the same journal must not re-invoke capabilities
	second, err := o.RunWithJournal(req, journal)
	if err != nil {
		t.Fatalf("replay RunWithJournal() error = %v", err)
	}
	if embedder.callCount() != embedCalls {
		t.Errorf("embedder called %d times after replay, want %d", embedder.callCount(), embedCalls)
	}
	if len(store.upserts) != upserts {
		t.Errorf("store received %d upserts after replay, want %d", len(store.upserts), upserts)
	}
	if second.Results[0].ID != first.Results[0].ID || !second.Results[0].OK {
		t.Errorf("replay result = %+v, want same as first = %+v", second.Results[0], first.Results[0])
	}
}
