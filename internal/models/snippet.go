// ABOUTME: Snippet is the persisted document: code, metadata, and embedding vector
// ABOUTME: Defines the record layout shared by storage, orchestration, and retrieval
package models

import "time"

// TypeCodeSnippet tags snippet records so other record types can share
// the same table without leaking into listings or similarity search.
const TypeCodeSnippet = "code-snippet"

// Snippet represents a stored code snippet with its document-level embedding
type Snippet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProjectID   string    `json:"projectId"`
	Code        string    `json:"code"`
	Type        string    `json:"type"`
	Language    string    `json:"language,omitempty"`
	Description string    `json:"description,omitempty"`
	Embedding   []float64 `json:"embedding,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasEmbedding reports whether the snippet carries a usable vector.
// Snippets without one stay point-lookup-able but are excluded from
// similarity search.
func (s *Snippet) HasEmbedding() bool {
	return len(s.Embedding) > 0
}

// SearchResult represents one similarity search hit
type SearchResult struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Score float64 `json:"score"`
}

// SnippetInfo is the metadata-only projection used by listings,
// deliberately excluding the embedding vector.
type SnippetInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
	Code      string `json:"code"`
}
