package semantic

import "github.com/custodia-labs/ordo/internal/core/domain"

// Vocabulary is a bijection between lemmas and dense indices.
// Indices are assigned contiguously from 0 in order of first appearance.
// A Vocabulary is read-only once built.
type Vocabulary struct {
	index  map[string]int
	lemmas []string
}

// NewVocabulary creates a vocabulary from lemmas, ignoring repeats.
func NewVocabulary(lemmas ...string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, l := range lemmas {
		v.add(l)
	}
	return v
}

func (v *Vocabulary) add(lemma string) {
	if _, ok := v.index[lemma]; ok {
		return
	}
	v.index[lemma] = len(v.lemmas)
	v.lemmas = append(v.lemmas, lemma)
}

// Index returns the index of lemma and whether it is present.
func (v *Vocabulary) Index(lemma string) (int, bool) {
	i, ok := v.index[lemma]
	return i, ok
}

// Lemma returns the lemma at index i.
func (v *Vocabulary) Lemma(i int) string {
	return v.lemmas[i]
}

// Len returns the number of lemmas.
func (v *Vocabulary) Len() int {
	return len(v.lemmas)
}

// Lemmas returns a copy of the lemmas in index order.
func (v *Vocabulary) Lemmas() []string {
	out := make([]string, len(v.lemmas))
	copy(out, v.lemmas)
	return out
}

// BuildVocabularies collects the adjective and context vocabularies of records.
// Both are empty when records is empty.
func BuildVocabularies(records []domain.Record) (adjectives, context *Vocabulary) {
	adjectives = NewVocabulary()
	context = NewVocabulary()
	for _, r := range records {
		adjectives.add(r.Adjective)
		for _, l := range r.Lemmas {
			context.add(l)
		}
	}
	return adjectives, context
}
