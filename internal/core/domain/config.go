package domain

import (
	"fmt"
	"path/filepath"
)

// DefaultLanguageLabel names artifacts when no corpus language is known.
const DefaultLanguageLabel = "user"

// ArtifactKind identifies a stage output file.
type ArtifactKind string

// Stage artifacts in cascade order.
const (
	ArtifactTagged   ArtifactKind = "tagged"
	ArtifactTargets  ArtifactKind = "targets"
	ArtifactDataset  ArtifactKind = "dataset"
	ArtifactOutput   ArtifactKind = "output"
	ArtifactNouns    ArtifactKind = "nouns"
	ArtifactAdjs     ArtifactKind = "adjs"
	ArtifactFiltered ArtifactKind = "filtered"
)

// Extension returns the file extension of the artifact.
func (k ArtifactKind) Extension() string {
	switch k {
	case ArtifactOutput, ArtifactNouns, ArtifactAdjs:
		return ".csv"
	default:
		return ".jsonl"
	}
}

// RunConfig is the per-invocation configuration threaded through every stage.
type RunConfig struct {
	// Language is the ISO-639 code of the corpus language.
	Language string

	// OutputDir is where artifacts are written.
	OutputDir string

	// LexiconPath is the pronunciation lexicon file.
	LexiconPath string

	// ConstraintsPath is the constraint file.
	ConstraintsPath string

	// Tagger configures the tagging service.
	Tagger TaggerSettings

	// Similarity configures the semantic pipeline.
	Similarity SimilaritySettings
}

// NewRunConfig creates a run configuration from settings.
func NewRunConfig(settings AppSettings) RunConfig {
	return RunConfig{
		Language:   settings.Language,
		OutputDir:  settings.OutputDir,
		Tagger:     settings.Tagger,
		Similarity: settings.Similarity,
	}
}

// Label returns the language used in artifact names.
func (c RunConfig) Label() string {
	if c.Language == "" {
		return DefaultLanguageLabel
	}
	return c.Language
}

// ArtifactPath returns the path of a stage artifact, e.g. "out/tagged_it.jsonl".
func (c RunConfig) ArtifactPath(kind ArtifactKind) string {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", kind, c.Label(), kind.Extension()))
}

// CosinesPath returns the path of the similarity scores file.
func (c RunConfig) CosinesPath() string {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "cosines.csv")
}

// Validate checks the similarity parameters.
func (c RunConfig) Validate() error {
	if c.Similarity.MinTokenCount < 1 {
		return fmt.Errorf("min token count must be at least 1: %w", ErrInvalidInput)
	}
	if c.Similarity.Dimensions < 1 {
		return fmt.Errorf("dimensions must be at least 1: %w", ErrInvalidInput)
	}
	return nil
}
