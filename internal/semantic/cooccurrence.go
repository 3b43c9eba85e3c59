package semantic

import (
	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Cooccurrence holds one adjective-by-context count matrix per orientation.
// Row i of both matrices belongs to the same adjective.
type Cooccurrence struct {
	// Prenominal counts context lemmas of ADJ NOUN records.
	// Nil when either vocabulary is empty.
	Prenominal *mat.Dense

	// Postnominal counts context lemmas of NOUN ADJ records.
	// Nil when either vocabulary is empty.
	Postnominal *mat.Dense

	// PrenominalTokens is the number of prenominal records per adjective.
	PrenominalTokens []int

	// PostnominalTokens is the number of postnominal records per adjective.
	PostnominalTokens []int
}

// Matrix returns the count matrix of orientation o.
func (c *Cooccurrence) Matrix(o domain.Orientation) *mat.Dense {
	if o == domain.Prenominal {
		return c.Prenominal
	}
	return c.Postnominal
}

// BuildCooccurrence counts, for every record, each lemma of its sentence
// against its adjective in the matrix of its orientation. Repeated lemmas
// are counted every time they occur. Token counters grow by one per record
// even when the record carries no lemmas.
func BuildCooccurrence(records []domain.Record, adjectives, context *Vocabulary) *Cooccurrence {
	rows, cols := adjectives.Len(), context.Len()
	co := &Cooccurrence{
		PrenominalTokens:  make([]int, rows),
		PostnominalTokens: make([]int, rows),
	}
	if rows > 0 && cols > 0 {
		co.Prenominal = mat.NewDense(rows, cols, nil)
		co.Postnominal = mat.NewDense(rows, cols, nil)
	}

	for _, r := range records {
		i, ok := adjectives.Index(r.Adjective)
		if !ok {
			continue
		}
		if r.Orientation == domain.Prenominal {
			co.PrenominalTokens[i]++
		} else {
			co.PostnominalTokens[i]++
		}
		m := co.Matrix(r.Orientation)
		if m == nil {
			continue
		}
		for _, l := range r.Lemmas {
			j, ok := context.Index(l)
			if !ok {
				continue
			}
			m.Set(i, j, m.At(i, j)+1)
		}
	}
	return co
}
