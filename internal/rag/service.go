// ABOUTME: RAG query service: embed question, scoped search, grounded generation
// ABOUTME: Returns the generated answer with the full retrieved set as citations
package rag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snipd/snipd/internal/models"
)

// ErrEmptyQuestion indicates a question that is empty after trimming,
// rejected before any embedding or search work happens
var ErrEmptyQuestion = errors.New("question must not be empty")

// systemPrompt instructs the generation capability to stay grounded in
// the retrieved snippets and to cite their ids
const systemPrompt = "You are a concise assistant. Answer using only the provided snippets. Cite snippet ids."

// snippetDelimiter separates snippets inside the grounding context
const snippetDelimiter = "\n---\n"

// Embedder converts the question into a query vector
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// Searcher performs the project-scoped similarity search
type Searcher interface {
	SearchSimilar(queryVector []float64, projectID string, k int) ([]models.SearchResult, error)
}

// Generator produces the answer text from a system and user prompt
type Generator interface {
	Complete(systemPrompt, userPrompt string) (string, models.Usage, error)
}

// Service answers questions grounded in a project's stored snippets
type Service struct {
	embedder       Embedder
	searcher       Searcher
	generator      Generator
	defaultProject string
	topK           int
}

// NewService creates a query service with the given collaborators
func NewService(embedder Embedder, searcher Searcher, generator Generator, defaultProject string, topK int) *Service {
	return &Service{
		embedder:       embedder,
		searcher:       searcher,
		generator:      generator,
		defaultProject: defaultProject,
		topK:           topK,
	}
}

// Answer embeds the question, retrieves the k most similar snippets in the
// project scope, and asks the generation capability for a grounded answer.
// Search and generation failures propagate; they are never masked as an
// empty answer. Citations cover every retrieved snippet in rank order,
// regardless of whether the answer text referenced it.
func (s *Service) Answer(question, projectID string, k int) (*models.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	if projectID == "" {
		projectID = s.defaultProject
	}
	if k < 1 {
		k = s.topK
	}

	queryVector, err := s.embedder.GenerateEmbedding(question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	results, err := s.searcher.SearchSimilar(queryVector, projectID, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	contexts := make([]string, len(results))
	citations := make([]models.Citation, len(results))
	for i, r := range results {
		contexts[i] = r.Code
		citations[i] = models.Citation{ID: r.ID, Score: r.Score}
	}

	userPrompt := fmt.Sprintf("Question: %s\n\nSnippets:\n%s",
		question, strings.Join(contexts, snippetDelimiter))

	answer, usage, err := s.generator.Complete(systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	return &models.Answer{
		Answer:    answer,
		Citations: citations,
		Usage:     usage,
	}, nil
}

// Search embeds the query text and returns the raw scoped search results
// without a generation step. Used by the search tool surfaces.
func (s *Service) Search(query, projectID string, k int) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuestion
	}
	if projectID == "" {
		projectID = s.defaultProject
	}
	if k < 1 {
		k = s.topK
	}

	queryVector, err := s.embedder.GenerateEmbedding(query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := s.searcher.SearchSimilar(queryVector, projectID, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return results, nil
}
