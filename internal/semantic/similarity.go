package semantic

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Cosine returns the cosine similarity of a and b, clamped to [-1, 1].
// It is 0 when either vector has zero norm.
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	c := floats.Dot(a, b) / (na * nb)
	switch {
	case c > 1:
		return 1
	case c < -1:
		return -1
	default:
		return c
	}
}

// RowCosines returns the cosine between row i of a and row i of b for
// every row. Both matrices must have the same shape; it panics with
// mat.ErrShape otherwise.
func RowCosines(a, b mat.Matrix) []float64 {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		panic(mat.ErrShape)
	}
	out := make([]float64, ra)
	for i := 0; i < ra; i++ {
		out[i] = Cosine(mat.Row(nil, i, a), mat.Row(nil, i, b))
	}
	return out
}

// Extremes returns up to n least similar and n most similar scores.
// Least similar come first in ascending order; most similar are in
// descending order. Ties keep vocabulary order.
func Extremes(scores []domain.SimilarityScore, n int) (least, most []domain.SimilarityScore) {
	sorted := make([]domain.SimilarityScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cosine < sorted[j].Cosine
	})
	n = min(n, len(sorted))
	least = sorted[:n]
	most = make([]domain.SimilarityScore, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		most = append(most, sorted[i])
	}
	return least, most
}
