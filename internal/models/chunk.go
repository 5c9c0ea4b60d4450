// ABOUTME: Chunk is an ephemeral, order-preserving segment of a snippet's code
// ABOUTME: Chunks exist only between the chunker and the embedding fan-out
package models

// Chunk represents one fixed-size segment of a snippet's text.
// Index is 0-based and contiguous; concatenating chunk texts in index
// order reproduces the original document exactly.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}
