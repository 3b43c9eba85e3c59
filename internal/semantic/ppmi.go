package semantic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// smoothing is added to every cell so that empty rows and columns never
// produce a zero denominator.
const smoothing = math.SmallestNonzeroFloat64

// PPMI converts a count matrix into pointwise mutual information:
//
//	PMI(i, j) = log(M(i, j) / (row(i) * col(j) / total))
//
// computed over the smoothed matrix. Non-finite results become 0, and
// with positive set negative results become 0 too. The input is not
// modified.
func PPMI(m mat.Matrix, positive bool) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		return v + smoothing
	}, m)

	rowTotals := make([]float64, rows)
	colTotals := make([]float64, cols)
	var total float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := out.At(i, j)
			rowTotals[i] += v
			colTotals[j] += v
		}
	}
	for _, v := range colTotals {
		total += v
	}

	out.Apply(func(i, j int, v float64) float64 {
		expected := rowTotals[i] * colTotals[j] / total
		pmi := math.Log(v / expected)
		if math.IsInf(pmi, 0) || math.IsNaN(pmi) {
			return 0
		}
		if positive && pmi < 0 {
			return 0
		}
		return pmi
	}, out)
	return out
}
