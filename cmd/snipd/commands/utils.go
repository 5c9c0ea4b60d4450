// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates storage setup, client setup, and formatting helpers
package commands

import (
	"fmt"

	"github.com/snipd/snipd/internal/config"
	"github.com/snipd/snipd/internal/core"
	"github.com/snipd/snipd/internal/llm"
	"github.com/snipd/snipd/internal/rag"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

// loadConfig loads pipeline configuration from the environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// openStorage opens snippet storage at the configured path, falling back
// to the XDG default location
func openStorage(cfg *config.Config) (*sqlite.Storage, error) {
	path := cfg.DBPath
	if path == "" {
		path = sqlite.DefaultDBPath()
	}
	store, err := sqlite.NewStorage(path, cfg.VectorDimension)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// newLLMClient creates an OpenAI client from configuration. Commands that
// embed or generate require an API key.
func newLLMClient(cfg *config.Config) (*llm.OpenAIClient, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return llm.NewOpenAIClientWithConfig(llm.ConfigFromApp(cfg))
}

// newOrchestrator wires the ingestion pipeline from configuration
func newOrchestrator(cfg *config.Config, client *llm.OpenAIClient, store *sqlite.Storage) (*core.Orchestrator, error) {
	chunker, err := core.NewChunker(cfg.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("creating chunker: %w", err)
	}
	return core.NewOrchestrator(client, store, chunker, cfg.DefaultProject), nil
}

// newRAGService wires the retrieval and answering pipeline
func newRAGService(cfg *config.Config, client *llm.OpenAIClient, store *sqlite.Storage) *rag.Service {
	return rag.NewService(client, store, client, cfg.DefaultProject, cfg.TopK)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// firstLine returns the first line of s, for table previews
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
