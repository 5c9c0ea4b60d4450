// ABOUTME: Orchestrator coordinates chunk embedding fan-out/fan-in and persistence
// ABOUTME: Snippets run sequentially; chunks within a snippet embed concurrently
package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/snipd/snipd/internal/models"
)

// Embedder converts one text chunk into a fixed-length vector
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// SnippetUpserter persists one snippet, creating or fully replacing it
type SnippetUpserter interface {
	Upsert(snippet *models.Snippet) (*models.Snippet, error)
}

// Orchestrator runs the ingestion pipeline for batches of snippets
type Orchestrator struct {
	embedder       Embedder
	store          SnippetUpserter
	chunker        *Chunker
	defaultProject string
}

// NewOrchestrator creates an Orchestrator with the given collaborators
func NewOrchestrator(embedder Embedder, store SnippetUpserter, chunker *Chunker, defaultProject string) *Orchestrator {
	return &Orchestrator{
		embedder:       embedder,
		store:          store,
		chunker:        chunker,
		defaultProject: defaultProject,
	}
}

// Run validates and ingests a batch of snippets with a fresh journal.
// Validation failures reject the whole submission before any embedding
// call is made.
func (o *Orchestrator) Run(req *models.IngestRequest) (*models.IngestResult, error) {
	return o.RunWithJournal(req, NewJournal())
}

// RunWithJournal ingests a batch using an existing journal. Passing the
// journal of a previous interrupted run re-executes the orchestration from
// the top: already-recorded steps short-circuit to their recorded results
// instead of re-invoking the embedding or persistence capabilities.
func (o *Orchestrator) RunWithJournal(req *models.IngestRequest, journal *Journal) (*models.IngestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ingest request: %w", err)
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = o.defaultProject
	}

	result := &models.IngestResult{
		InstanceID: uuid.New().String(),
		Status:     models.StatusRunning,
		Results:    make([]models.SnippetResult, len(req.Snippets)),
	}
	log.Printf("orchestration %s started: project=%s snippets=%d",
		result.InstanceID, projectID, len(req.Snippets))

	// Strictly sequential across snippets: one snippet's full
	// chunk-embed-persist cycle completes before the next starts, which
	// bounds peak concurrency to a single document's chunk count.
	for i, snip := range req.Snippets {
		result.Results[i] = o.ingestOne(projectID, snip, journal)
	}

	result.Status = models.StatusCompleted
	log.Printf("orchestration %s completed", result.InstanceID)
	return result, nil
}

// ingestOne runs the chunk → fan-out embed → aggregate → upsert cycle for
// a single snippet. Persistence failure lands in this snippet's slot and
// never aborts its siblings.
func (o *Orchestrator) ingestOne(projectID string, snip models.SnippetRequest, journal *Journal) models.SnippetResult {
	chunks := o.chunker.Split(snip.Code)
	vectors := o.embedChunks(projectID, snip.Name, chunks, journal)

	embedding, err := Aggregate(vectors)
	if err != nil {
		// Mismatched chunk dimensions: persist without an embedding so
		// the snippet stays point-lookup-able but never surfaces in
		// similarity search.
		log.Printf("snippet %s: aggregation failed: %v", snip.Name, err)
		embedding = []float64{}
	}

	stepKey := fmt.Sprintf("upsert/%s/%s", projectID, snip.Name)
	value, replayed, err := journal.Do(stepKey, func() (any, error) {
		return o.store.Upsert(&models.Snippet{
			ID:          snip.Name,
			Name:        snip.Name,
			ProjectID:   projectID,
			Code:        snip.Code,
			Type:        models.TypeCodeSnippet,
			Language:    snip.Language,
			Description: snip.Description,
			Embedding:   embedding,
		})
	})
	if replayed {
		log.Printf("[REPLAY] upsert %s", stepKey)
	} else {
		log.Printf("[EXEC] upsert %s", stepKey)
	}
	if err != nil {
		return models.SnippetResult{OK: false, ID: snip.Name, Error: err.Error()}
	}

	stored := value.(*models.Snippet)
	return models.SnippetResult{OK: true, ID: stored.ID}
}

// embedChunks fans out one embedding call per chunk and joins on an
// all-complete barrier. A failed call resolves to an empty vector in its
// chunk's slot; slots are never dropped, so the vector-length accounting
// seen by the aggregator always matches the chunk count.
func (o *Orchestrator) embedChunks(projectID, name string, chunks []models.Chunk, journal *Journal) [][]float64 {
	vectors := make([][]float64, len(chunks))

	var wg sync.WaitGroup
	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk models.Chunk) {
			defer wg.Done()

			stepKey := fmt.Sprintf("embed/%s/%s/%d", projectID, name, chunk.Index)
			value, replayed, err := journal.Do(stepKey, func() (any, error) {
				return o.embedder.GenerateEmbedding(chunk.Text)
			})
			if replayed {
				log.Printf("[REPLAY] embed %s", stepKey)
			} else {
				log.Printf("[EXEC] embed %s", stepKey)
			}
			if err != nil {
				log.Printf("chunk %d of %s: embedding failed: %v", chunk.Index, name, err)
				vectors[chunk.Index] = []float64{}
				return
			}
			vectors[chunk.Index] = value.([]float64)
		}(chunk)
	}
	wg.Wait()

	return vectors
}
