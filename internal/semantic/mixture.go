package semantic

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

const (
	mixtureIterations = 200
	mixtureTolerance  = 1e-8
	minSigma          = 1e-6
)

// Mixture is a one-dimensional Gaussian mixture fitted by expectation
// maximisation. Components are ordered by mean.
type Mixture struct {
	Components    []domain.MixtureComponent
	Iterations    int
	LogLikelihood float64
}

// FitMixture fits a k-component Gaussian mixture to values. Initial means
// are spread evenly over the sorted values, so the fit is deterministic.
// It returns nil when values hold fewer distinct points than components
// or fewer than two points.
func FitMixture(values []float64, k int) *Mixture {
	if k < 1 || len(values) < 2 || distinct(values) < k {
		return nil
	}
	n := len(values)
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sigma := math.Max(math.Sqrt(stat.Variance(values, nil)), minSigma)
	comps := make([]distuv.Normal, k)
	weights := make([]float64, k)
	for c := range comps {
		q := (float64(c) + 0.5) / float64(k)
		comps[c] = distuv.Normal{Mu: stat.Quantile(q, stat.Empirical, sorted, nil), Sigma: sigma}
		weights[c] = 1 / float64(k)
	}

	resp := make([][]float64, n)
	for i := range resp {
		resp[i] = make([]float64, k)
	}

	prev := math.Inf(-1)
	var ll float64
	iter := 0
	for iter < mixtureIterations {
		iter++

		// expectation
		ll = 0
		for i, x := range values {
			for c := range comps {
				resp[i][c] = weights[c] * comps[c].Prob(x)
			}
			total := floats.Sum(resp[i])
			if total == 0 {
				for c := range resp[i] {
					resp[i][c] = 1 / float64(k)
				}
				continue
			}
			floats.Scale(1/total, resp[i])
			ll += math.Log(total)
		}

		// maximisation
		for c := range comps {
			w := make([]float64, n)
			for i := range values {
				w[i] = resp[i][c]
			}
			sum := floats.Sum(w)
			if sum == 0 {
				continue
			}
			mean := floats.Dot(w, values) / sum
			var ss float64
			for i, x := range values {
				ss += w[i] * (x - mean) * (x - mean)
			}
			comps[c] = distuv.Normal{Mu: mean, Sigma: math.Max(math.Sqrt(ss/sum), minSigma)}
			weights[c] = sum / float64(n)
		}

		if math.Abs(ll-prev) < mixtureTolerance {
			break
		}
		prev = ll
	}

	m := &Mixture{
		Components:    make([]domain.MixtureComponent, k),
		Iterations:    iter,
		LogLikelihood: ll,
	}
	for c := range comps {
		m.Components[c] = domain.MixtureComponent{Weight: weights[c], Mean: comps[c].Mu, StdDev: comps[c].Sigma}
	}
	for i := range values {
		m.Components[floats.MaxIdx(resp[i])].Members++
	}
	sort.SliceStable(m.Components, func(a, b int) bool {
		return m.Components[a].Mean < m.Components[b].Mean
	})
	return m
}

func distinct(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
