package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

func TestRunStore_SaveAndGet(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	run := domain.Run{ID: "run-1", Kind: domain.RunKindSimilarity, Language: "it", CreatedAt: time.Now()}
	scores := []domain.SimilarityScore{{Adjective: "grande", Cosine: 0.4}}
	require.NoError(t, store.Save(ctx, run, scores))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "it", got.Language)

	gotScores, err := store.Scores(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, scores, gotScores)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store := NewRunStore()

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = store.Scores(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunStore_List_NewestFirst(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.Run{ID: "old", CreatedAt: base}, nil))
	require.NoError(t, store.Save(ctx, domain.Run{ID: "new", CreatedAt: base.Add(time.Hour)}, nil))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "old", runs[1].ID)
}

func TestRunStore_Delete(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Run{ID: "run-1"}, []domain.SimilarityScore{{Adjective: "a"}}))

	require.NoError(t, store.Delete(ctx, "run-1"))

	_, err := store.Get(ctx, "run-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	runs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestTagCache(t *testing.T) {
	cache := NewTagCache()
	ctx := context.Background()
	tokens := []domain.TaggedToken{{Text: "casa", Lemma: "casa", Tag: domain.TagNoun}}

	_, err := cache.Get(ctx, "it", "spacy", "casa")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, cache.Put(ctx, "it", "spacy", "casa", tokens))
	got, err := cache.Get(ctx, "it", "spacy", "casa")
	require.NoError(t, err)
	assert.Equal(t, tokens, got)
	assert.Equal(t, 1, cache.Len())

	// keyed by tagger as well as text
	_, err = cache.Get(ctx, "it", "stanza", "casa")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
