package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is an in-memory implementation of driven.ArtifactStore.
// Artifacts are keyed by path.
type ArtifactStore struct {
	mu        sync.RWMutex
	sentences map[string][]domain.Sentence
	pairs     map[string][]domain.PairToken
	tables    map[string]domain.Table
	json      map[string]any
}

// NewArtifactStore creates a new in-memory artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{
		sentences: make(map[string][]domain.Sentence),
		pairs:     make(map[string][]domain.PairToken),
		tables:    make(map[string]domain.Table),
		json:      make(map[string]any),
	}
}

// WriteSentences stores sentences under path.
func (s *ArtifactStore) WriteSentences(_ context.Context, path string, sentences []domain.Sentence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]domain.Sentence, len(sentences))
	copy(copied, sentences)
	s.sentences[path] = copied
	return nil
}

// ReadSentences returns the sentences stored under path.
func (s *ArtifactStore) ReadSentences(_ context.Context, path string) ([]domain.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sentences, ok := s.sentences[path]
	if !ok {
		return nil, fmt.Errorf("artifact %s: %w", path, domain.ErrNotFound)
	}
	copied := make([]domain.Sentence, len(sentences))
	copy(copied, sentences)
	return copied, nil
}

// WritePairs stores pairs under path.
func (s *ArtifactStore) WritePairs(_ context.Context, path string, pairs []domain.PairToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]domain.PairToken, len(pairs))
	copy(copied, pairs)
	s.pairs[path] = copied
	return nil
}

// ReadPairs returns the pairs stored under path.
func (s *ArtifactStore) ReadPairs(_ context.Context, path string) ([]domain.PairToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pairs, ok := s.pairs[path]
	if !ok {
		return nil, fmt.Errorf("artifact %s: %w", path, domain.ErrNotFound)
	}
	copied := make([]domain.PairToken, len(pairs))
	copy(copied, pairs)
	return copied, nil
}

// WriteTable stores a table under path.
func (s *ArtifactStore) WriteTable(_ context.Context, path string, table domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[path] = table
	return nil
}

// WriteJSON stores v under path.
func (s *ArtifactStore) WriteJSON(_ context.Context, path string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.json[path] = v
	return nil
}

// Table returns the table stored under path.
func (s *ArtifactStore) Table(path string) (domain.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[path]
	return table, ok
}

// JSON returns the value stored under path.
func (s *ArtifactStore) JSON(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.json[path]
	return v, ok
}

// Paths returns every stored path in sorted order.
func (s *ArtifactStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var paths []string
	for p := range s.sentences {
		paths = append(paths, p)
	}
	for p := range s.pairs {
		paths = append(paths, p)
	}
	for p := range s.tables {
		paths = append(paths, p)
	}
	for p := range s.json {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
