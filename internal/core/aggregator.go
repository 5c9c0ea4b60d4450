// ABOUTME: Aggregator collapses per-chunk embedding vectors into one document vector
// ABOUTME: Uses an unweighted element-wise arithmetic mean over all chunk vectors
package core

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates the embedding capability returned vectors
// of different lengths within one document. The aggregation fails loudly
// rather than silently truncating or padding.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Aggregate computes the element-wise mean of the given vectors.
//
// An empty sequence, or a first vector of zero length, yields an empty
// vector: "no embedding" propagates instead of raising. Empty vectors in
// later slots (failed chunk embeddings) still count toward the divisor,
// so they surface as a dimension mismatch rather than quietly inflating
// the mean of the surviving chunks.
func Aggregate(vectors [][]float64) ([]float64, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return []float64{}, nil
	}

	dim := len(vectors[0])
	sums := make([]float64, dim)
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("%w: vector %d has length %d, want %d",
				ErrDimensionMismatch, i, len(vec), dim)
		}
		for j, v := range vec {
			sums[j] += v
		}
	}

	n := float64(len(vectors))
	for j := range sums {
		sums[j] /= n
	}
	return sums, nil
}
