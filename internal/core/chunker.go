// ABOUTME: Chunker splits snippet text into fixed-size, order-preserving segments
// ABOUTME: Splitting is lossless: concatenating chunks in order reproduces the input
package core

import (
	"fmt"

	"github.com/snipd/snipd/internal/models"
)

// DefaultChunkSize is the chunk length used when no size is configured
const DefaultChunkSize = 2048

// Chunker splits text into consecutive, non-overlapping chunks
type Chunker struct {
	size int
}

// NewChunker creates a Chunker with the given chunk size.
// Size must be a positive number of runes.
func NewChunker(size int) (*Chunker, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	return &Chunker{size: size}, nil
}

// Size returns the configured chunk size
func (c *Chunker) Size() int {
	return c.size
}

// Split cuts text into chunks of exactly the configured size, except the
// final chunk which may be shorter. Splitting operates on runes so a
// multi-byte character is never cut in half. Empty text yields exactly one
// empty chunk, so a zero-length document still gets one embedding call.
func (c *Chunker) Split(text string) []models.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return []models.Chunk{{Index: 0, Text: ""}}
	}

	chunks := make([]models.Chunk, 0, (len(runes)+c.size-1)/c.size)
	for start := 0; start < len(runes); start += c.size {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.Chunk{
			Index: len(chunks),
			Text:  string(runes[start:end]),
		})
	}

	return chunks
}
