package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown tagger provider or artifact kind.
	ErrUnsupportedType = errors.New("unsupported type")

	// Semantic Pipeline Errors.

	// ErrEmptyVocabulary indicates no adjective survived frequency filtering.
	// The run cannot continue: PPMI and PCA are undefined on an empty matrix.
	ErrEmptyVocabulary = errors.New("no adjectives survive frequency filtering")

	// ErrEmptyCooccurrence indicates a filtered orientation matrix holds no counts.
	ErrEmptyCooccurrence = errors.New("co-occurrence matrix is empty")

	// ErrDimensionTooLarge indicates the requested embedding dimension exceeds
	// the rank available in the stacked PPMI matrix.
	ErrDimensionTooLarge = errors.New("embedding dimension exceeds available rank")

	// Stage Errors.

	// ErrTaggerUnavailable indicates the part-of-speech tagger could not be reached.
	ErrTaggerUnavailable = errors.New("tagger unavailable")

	// ErrLexiconRequired indicates a stage needs a pronunciation lexicon but none was given.
	ErrLexiconRequired = errors.New("pronunciation lexicon required")

	// ErrInvalidLexicon indicates the lexicon file is not in a recognised format.
	ErrInvalidLexicon = errors.New("invalid lexicon")

	// ErrConstraintsRequired indicates a stage needs a constraint file but none was given.
	ErrConstraintsRequired = errors.New("constraint file required")

	// ErrInvalidConstraint indicates a constraint line could not be parsed or compiled.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrCorpusNotFound indicates the corpus directory or its transcript file is missing.
	ErrCorpusNotFound = errors.New("corpus not found")
)
