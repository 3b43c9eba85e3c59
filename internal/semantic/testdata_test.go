package semantic

import "github.com/custodia-labs/ordo/internal/core/domain"

func repeat(n int, r domain.Record) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func rec(adj string, o domain.Orientation, lemmas ...string) domain.Record {
	return domain.Record{Adjective: adj, Orientation: o, Lemmas: lemmas}
}

// scenarioRecords builds three adjectives: "big" with the same contexts in
// both orders, "fast" only prenominal, and "red" with disjoint contexts.
func scenarioRecords() []domain.Record {
	var records []domain.Record
	records = append(records, repeat(3, rec("big", domain.Prenominal, "the", "big", "dog"))...)
	records = append(records, repeat(2, rec("big", domain.Prenominal, "a", "big", "cat"))...)
	records = append(records, repeat(3, rec("big", domain.Postnominal, "the", "dog", "big"))...)
	records = append(records, repeat(2, rec("big", domain.Postnominal, "a", "cat", "big"))...)
	records = append(records, repeat(10, rec("fast", domain.Prenominal, "a", "fast", "car"))...)
	records = append(records, repeat(2, rec("red", domain.Prenominal, "red", "car"))...)
	records = append(records, rec("red", domain.Prenominal, "red", "house"))
	records = append(records, repeat(2, rec("red", domain.Postnominal, "ocean", "red"))...)
	records = append(records, rec("red", domain.Postnominal, "sky", "red"))
	return records
}
