package semantic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Reduction is the PCA projection of a matrix onto its top principal axes.
type Reduction struct {
	// Embedded is the centred input projected onto the principal axes,
	// one row per input row.
	Embedded *mat.Dense

	// Variances holds the variance along each kept axis, largest first.
	Variances []float64

	// ExplainedVariance holds the share of total variance per kept axis.
	ExplainedVariance []float64

	// Dimensions is the number of axes kept.
	Dimensions int

	// RequestedDimensions is the number of axes asked for.
	RequestedDimensions int
}

// MaxDimensions returns the largest embedding dimension PCA can produce
// for an r by c matrix.
func MaxDimensions(r, c int) int {
	return min(r, c)
}

// Reduce projects m onto its top k principal components. When k exceeds
// the feasible maximum it returns domain.ErrDimensionTooLarge if strict
// is set, and otherwise keeps as many axes as are available. Callers see
// the clamp through RequestedDimensions.
func Reduce(m mat.Matrix, k int, strict bool) (*Reduction, error) {
	if k < 1 {
		return nil, fmt.Errorf("dimensions %d: %w", k, domain.ErrInvalidInput)
	}
	rows, cols := m.Dims()
	maxK := MaxDimensions(rows, cols)
	if k > maxK && strict {
		return nil, fmt.Errorf("requested %d, available %d: %w", k, maxK, domain.ErrDimensionTooLarge)
	}
	used := min(k, maxK)

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, fmt.Errorf("principal components analysis failed: %w", domain.ErrInvalidInput)
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)

	centred := mat.DenseCopyOf(m)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, centred)
		mean := stat.Mean(col, nil)
		floats.AddConst(-mean, col)
		centred.SetCol(j, col)
	}

	var embedded mat.Dense
	embedded.Mul(centred, vecs.Slice(0, cols, 0, used))

	r := &Reduction{
		Embedded:            &embedded,
		Variances:           vars[:used],
		ExplainedVariance:   make([]float64, used),
		Dimensions:          used,
		RequestedDimensions: k,
	}
	if total := floats.Sum(vars); total > 0 {
		for i := 0; i < used; i++ {
			r.ExplainedVariance[i] = vars[i] / total
		}
	}
	return r, nil
}

// Split returns the first rows and the remaining rows of the embedding.
func (r *Reduction) Split(rows int) (top, bottom *mat.Dense) {
	n, c := r.Embedded.Dims()
	top = mat.DenseCopyOf(r.Embedded.Slice(0, rows, 0, c))
	bottom = mat.DenseCopyOf(r.Embedded.Slice(rows, n, 0, c))
	return top, bottom
}
