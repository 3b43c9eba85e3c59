// Package semantic measures how far an adjective's meaning drifts between
// its prenominal and postnominal uses.
//
// The computation is a strict forward pipeline over typed records:
//
//  1. Vocabularies: adjective lemmas (rows) and context lemmas (columns)
//  2. Co-occurrence: one count matrix per orientation
//  3. Filter: adjectives attested often enough in both orientations
//  4. PPMI: positive pointwise mutual information over the stacked matrix
//  5. Reduce: PCA over the stacked PPMI matrix
//  6. Score: row-wise cosine between the two halves
//
// Everything here is in-memory, single-threaded and deterministic: the
// result is a pure function of the records and Options.
package semantic
