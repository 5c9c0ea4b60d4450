// ABOUTME: Tests for fixed-size lossless chunking
// ABOUTME: Verifies round-trip, chunk counts, and the empty-document case
package core

import (
	"strings"
	"testing"
)

func TestNewChunker_InvalidSize(t *testing.T) {
	tests := []int{0, -1, -100}
	for _, size := range tests {
		if _, err := NewChunker(size); err == nil {
			t.Errorf("NewChunker(%d) error = nil, want error", size)
		}
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		size       int
		wantChunks int
	}{
		{"exact multiple", "abcdef", 2, 3},
		{"remainder", "abcdefg", 3, 3},
		{"single chunk", "ab", 10, 1},
		{"size one", "abc", 1, 3},
		{"multibyte runes", "héllo wörld ünïcode", 4, 5},
		{"newlines preserved", "line1\n\nline2\n", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChunker(tt.size)
			if err != nil {
				t.Fatalf("NewChunker(%d) error = %v", tt.size, err)
			}

			chunks := c.Split(tt.text)
			if len(chunks) != tt.wantChunks {
				t.Errorf("Split() chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}

			// Round-trip: concatenation reproduces the input exactly
			var b strings.Builder
			for i, chunk := range chunks {
				if chunk.Index != i {
					t.Errorf("chunk %d has Index = %d", i, chunk.Index)
				}
				b.WriteString(chunk.Text)
			}
			if b.String() != tt.text {
				t.Errorf("round-trip = %q, want %q", b.String(), tt.text)
			}

			// Every chunk except the last is exactly size runes
			for i, chunk := range chunks[:len(chunks)-1] {
				if n := len([]rune(chunk.Text)); n != tt.size {
					t.Errorf("chunk %d length = %d, want %d", i, n, tt.size)
				}
			}
			last := chunks[len(chunks)-1]
			if n := len([]rune(last.Text)); n > tt.size {
				t.Errorf("last chunk length = %d, want <= %d", n, tt.size)
			}
		})
	}
}

func TestSplit_EmptyText(t *testing.T) {
	c, err := NewChunker(100)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	chunks := c.Split("")
	if len(chunks) != 1 {
		t.Fatalf("Split(\"\") chunk count = %d, want 1", len(chunks))
	}
	if chunks[0].Text != "" {
		t.Errorf("Split(\"\") chunk text = %q, want empty", chunks[0].Text)
	}
	if chunks[0].Index != 0 {
		t.Errorf("Split(\"\") chunk index = %d, want 0", chunks[0].Index)
	}
}

func TestSplit_LargeText(t *testing.T) {
	c, err := NewChunker(DefaultChunkSize)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	text := strings.Repeat("x", DefaultChunkSize*3+17)
	chunks := c.Split(text)
	if len(chunks) != 4 {
		t.Errorf("chunk count = %d, want 4", len(chunks))
	}
	if n := len([]rune(chunks[3].Text)); n != 17 {
		t.Errorf("last chunk length = %d, want 17", n)
	}
}
