package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ordo/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ordo/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("language", "it")
	_ = store.Set("similarity.dimensions", 32)
	_ = store.Set("similarity.positive_ppmi", false)
	_ = store.Set("tagger.provider", "stanza")
	_ = store.Set("tagger.requests_per_second", 2.5)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "it", settings.Language)
	assert.Equal(t, 32, settings.Similarity.Dimensions)
	assert.False(t, settings.Similarity.PositivePPMI)
	assert.Equal(t, 2, settings.Similarity.MinTokenCount)
	assert.Equal(t, domain.TaggerStanza, settings.Tagger.Provider)
	assert.InDelta(t, 2.5, settings.Tagger.RequestsPerSecond, 1e-12)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("tagger.provider", "treetagger")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.TaggerSpacy, settings.Tagger.Provider)
}

func TestSettingsService_Save(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings := &domain.AppSettings{
		Language:  "fr",
		OutputDir: "out",
		Similarity: domain.SimilaritySettings{
			MinTokenCount:    5,
			Dimensions:       64,
			PositivePPMI:     false,
			StrictDimensions: true,
		},
		Tagger: domain.TaggerSettings{
			Provider:          domain.TaggerStanza,
			BaseURL:           "http://tagger:9000",
			Model:             "fr",
			RequestsPerSecond: 10,
		},
	}

	require.NoError(t, service.Save(settings))

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, retrieved)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"language", "it", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "it", s.Language) }},
		{"output_dir", "results", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "results", s.OutputDir) }},
		{"similarity.min_token_count", "3", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 3, s.Similarity.MinTokenCount) }},
		{"similarity.dimensions", "16", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 16, s.Similarity.Dimensions) }},
		{"similarity.positive_ppmi", "false", func(t *testing.T, s *domain.AppSettings) { assert.False(t, s.Similarity.PositivePPMI) }},
		{"similarity.strict_dimensions", "true", func(t *testing.T, s *domain.AppSettings) { assert.True(t, s.Similarity.StrictDimensions) }},
		{"tagger.provider", "stanza", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, domain.TaggerStanza, s.Tagger.Provider) }},
		{"tagger.base_url", "https://nlp.example.com", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "https://nlp.example.com", s.Tagger.BaseURL)
		}},
		{"tagger.model", "it_core_news_lg", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "it_core_news_lg", s.Tagger.Model) }},
		{"tagger.requests_per_second", "0.5", func(t *testing.T, s *domain.AppSettings) {
			assert.InDelta(t, 0.5, s.Tagger.RequestsPerSecond, 1e-12)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  error
	}{
		{"language", "not a language!", domain.ErrInvalidInput},
		{"similarity.dimensions", "zero", domain.ErrInvalidInput},
		{"similarity.min_token_count", "0", domain.ErrInvalidInput},
		{"similarity.positive_ppmi", "maybe", domain.ErrInvalidInput},
		{"tagger.requests_per_second", "-1", domain.ErrInvalidInput},
		{"tagger.base_url", "localhost", domain.ErrInvalidInput},
		{"tagger.provider", "treetagger", domain.ErrUnsupportedType},
		{"output.format", "parquet", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			_, exists := store.Get(tt.key)
			assert.False(t, exists)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 10)
	assert.Equal(t, "language", keys[0])
	assert.Contains(t, keys, "similarity.positive_ppmi")

	keys[0] = "mutated"
	assert.Equal(t, "language", service.Keys()[0])
}

func TestSettingsService_Validate_Defaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.NoError(t, service.Validate())
}

func TestSettingsService_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"bad language", "language", "??"},
		{"bad url", "tagger.base_url", "::"},
		{"negative rate", "tagger.requests_per_second", -2.0},
		{"negative dimensions", "similarity.dimensions", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			_ = store.Set(tt.key, tt.val)

			err := NewSettingsService(store).Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
