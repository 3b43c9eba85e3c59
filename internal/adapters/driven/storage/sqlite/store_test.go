package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testRun(id string, createdAt time.Time) domain.Run {
	return domain.Run{
		ID:       id,
		Kind:     domain.RunKindSimilarity,
		Language: "it",
		Input:    "dataset_it.jsonl",
		Settings: domain.SimilaritySettings{MinTokenCount: 2, Dimensions: 128, PositivePPMI: true},
		Summary: domain.RunSummary{
			Adjectives:          2,
			ContextLemmas:       11,
			Records:             26,
			Dimensions:          4,
			RequestedDimensions: 128,
			ExplainedVariance:   []float64{0.6, 0.3, 0.1, 0},
		},
		CreatedAt: createdAt,
	}
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/dev/null/cannot/create")
	assert.Error(t, err)
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "ordo.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".ordo", "data", "ordo.db"), store.Path())
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	for _, table := range []string{"runs", "scores", "tag_cache"} {
		var exists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.Equal(t, 1, exists, "table %s should exist", table)
	}
}

func TestNewStore_ReopenDoesNotReapply(t *testing.T) {
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.RunStore().Save(context.Background(), testRun("run-1", time.Now()), nil))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)

	_, err = second.RunStore().Get(context.Background(), "run-1")
	assert.NoError(t, err)
}

func TestStore_MigrateRecordsVersions(t *testing.T) {
	store := setupTestStore(t)

	extra := fstest.MapFS{
		"001_initial.up.sql": {Data: []byte("SELECT 1;")},
		"002_notes.up.sql":   {Data: []byte("CREATE TABLE notes (id TEXT PRIMARY KEY);")},
		"002_notes.down.sql": {Data: []byte("DROP TABLE notes;")},
		"readme.txt":         {Data: []byte("ignored")},
		"bad_name.up.sql":    {Data: []byte("not sql")},
	}
	require.NoError(t, store.migrate(extra))

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)

	var fkEnabled int
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled)
	require.NoError(t, err)
	assert.Equal(t, 1, fkEnabled, "foreign keys should be enabled")
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()

	created := time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)
	run := testRun("run-1", created)
	scores := []domain.SimilarityScore{
		{Adjective: "grande", Cosine: 0.91},
		{Adjective: "rosso", Cosine: -0.25},
	}
	require.NoError(t, runs.Save(ctx, run, scores))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, *got)

	gotScores, err := runs.Scores(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, scores, gotScores)
}

func TestRunStore_SaveReplacesScores(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	run := testRun("run-1", time.Now())

	require.NoError(t, runs.Save(ctx, run, []domain.SimilarityScore{{Adjective: "a"}, {Adjective: "b"}}))
	require.NoError(t, runs.Save(ctx, run, []domain.SimilarityScore{{Adjective: "c", Cosine: 1}}))

	scores, err := runs.Scores(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.SimilarityScore{{Adjective: "c", Cosine: 1}}, scores)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.RunStore().Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = store.RunStore().Scores(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunStore_List_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, runs.Save(ctx, testRun("old", base), nil))
	require.NoError(t, runs.Save(ctx, testRun("new", base.Add(time.Minute)), nil))

	list, err := runs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestRunStore_Delete_CascadesScores(t *testing.T) {
	store := setupTestStore(t)
	runs := store.RunStore()
	ctx := context.Background()

	require.NoError(t, runs.Save(ctx, testRun("run-1", time.Now()), []domain.SimilarityScore{{Adjective: "a"}}))
	require.NoError(t, runs.Delete(ctx, "run-1"))

	_, err := runs.Get(ctx, "run-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count))
	assert.Zero(t, count)
}

func TestTagCache_PutAndGet(t *testing.T) {
	store := setupTestStore(t)
	cache := store.TagCache()
	ctx := context.Background()

	tokens := []domain.TaggedToken{
		{Text: "casa", Lemma: "casa", Tag: domain.TagNoun},
		{Text: "bella", Lemma: "bello", Tag: domain.TagAdjective},
	}

	_, err := cache.Get(ctx, "it", "spacy", "casa bella")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, cache.Put(ctx, "it", "spacy", "casa bella", tokens))
	got, err := cache.Get(ctx, "it", "spacy", "casa bella")
	require.NoError(t, err)
	assert.Equal(t, tokens, got)

	// overwrite
	require.NoError(t, cache.Put(ctx, "it", "spacy", "casa bella", tokens[:1]))
	got, err = cache.Get(ctx, "it", "spacy", "casa bella")
	require.NoError(t, err)
	assert.Equal(t, tokens[:1], got)

	_, err = cache.Get(ctx, "it", "stanza", "casa bella")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
