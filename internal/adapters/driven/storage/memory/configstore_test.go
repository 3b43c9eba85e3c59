package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ordo/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("language", "it"))
	val, ok := store.Get("language")
	assert.True(t, ok)
	assert.Equal(t, "it", val)

	require.NoError(t, store.Set("language", "es"))
	assert.Equal(t, "es", store.GetString("language"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("language", "it")

	store.Delete("language")

	val, ok := store.Get("language")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(7))
	_ = store.Set("float", 3.9)
	_ = store.Set("string", "nope")

	assert.Equal(t, 42, store.GetInt("int"))
	assert.Equal(t, 7, store.GetInt("int64"))
	assert.Equal(t, 3, store.GetInt("float"))
	assert.Zero(t, store.GetInt("string"))
	assert.Zero(t, store.GetInt("missing"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("float", 2.5)
	_ = store.Set("int", 4)
	_ = store.Set("int64", int64(9))
	_ = store.Set("string", "nope")

	assert.Equal(t, 2.5, store.GetFloat("float"))
	assert.Equal(t, 4.0, store.GetFloat("int"))
	assert.Equal(t, 9.0, store.GetFloat("int64"))
	assert.Zero(t, store.GetFloat("string"))
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("true", true)
	_ = store.Set("string", "true")

	assert.True(t, store.GetBool("true"))
	assert.False(t, store.GetBool("string"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(
		map[string]any{"language": "it", "similarity.dimensions": 64},
		map[string]any{"language": "es"},
	)

	assert.Equal(t, "es", store.GetString("language"))
	assert.Equal(t, 64, store.GetInt("similarity.dimensions"))
	assert.Zero(t, store.Saves())
}

func TestConfigStore_CountsSaves(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("language", "it")

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "it", store.GetString("language"))
	assert.Equal(t, 2, store.Saves())
}

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("similarity.dimensions", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("similarity.dimensions")
		}()
	}
	wg.Wait()

	_, ok := store.Get("similarity.dimensions")
	assert.True(t, ok)
}
