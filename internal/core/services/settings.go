package services

import (
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/text/language"

	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driven"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLanguage         = "language"
	keyOutputDir        = "output_dir"
	keyMinTokenCount    = "similarity.min_token_count"
	keyDimensions       = "similarity.dimensions"
	keyPositivePPMI     = "similarity.positive_ppmi"
	keyStrictDimensions = "similarity.strict_dimensions"
	keyTaggerProvider   = "tagger.provider"
	keyTaggerBaseURL    = "tagger.base_url"
	keyTaggerModel      = "tagger.model"
	keyTaggerRate       = "tagger.requests_per_second"
)

// settingKeys lists the recognised keys in display order.
var settingKeys = []string{
	keyLanguage,
	keyOutputDir,
	keyMinTokenCount,
	keyDimensions,
	keyPositivePPMI,
	keyStrictDimensions,
	keyTaggerProvider,
	keyTaggerBaseURL,
	keyTaggerModel,
	keyTaggerRate,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Language:  s.configStore.GetString(keyLanguage), // No default - every corpus names its language
		OutputDir: s.getString(keyOutputDir, defaults.OutputDir),
		Similarity: domain.SimilaritySettings{
			MinTokenCount:    s.getInt(keyMinTokenCount, defaults.Similarity.MinTokenCount),
			Dimensions:       s.getInt(keyDimensions, defaults.Similarity.Dimensions),
			PositivePPMI:     s.getBool(keyPositivePPMI, defaults.Similarity.PositivePPMI),
			StrictDimensions: s.getBool(keyStrictDimensions, defaults.Similarity.StrictDimensions),
		},
		Tagger: domain.TaggerSettings{
			Provider:          s.getProvider(defaults.Tagger.Provider),
			BaseURL:           s.getString(keyTaggerBaseURL, defaults.Tagger.BaseURL),
			Model:             s.configStore.GetString(keyTaggerModel),
			RequestsPerSecond: s.configStore.GetFloat(keyTaggerRate),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyLanguage, settings.Language},
		{keyOutputDir, settings.OutputDir},
		{keyMinTokenCount, settings.Similarity.MinTokenCount},
		{keyDimensions, settings.Similarity.Dimensions},
		{keyPositivePPMI, settings.Similarity.PositivePPMI},
		{keyStrictDimensions, settings.Similarity.StrictDimensions},
		{keyTaggerProvider, settings.Tagger.Provider.String()},
		{keyTaggerBaseURL, settings.Tagger.BaseURL},
		{keyTaggerModel, settings.Tagger.Model},
		{keyTaggerRate, settings.Tagger.RequestsPerSecond},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set parses and stores a single setting by key.
func (s *SettingsService) Set(key, value string) error {
	var parsed any

	switch key {
	case keyLanguage:
		if value != "" {
			if _, err := language.Parse(value); err != nil {
				return fmt.Errorf("invalid language %q: %w", value, domain.ErrInvalidInput)
			}
		}
		parsed = value
	case keyOutputDir, keyTaggerModel:
		parsed = value
	case keyTaggerBaseURL:
		if err := validateURL(value); err != nil {
			return err
		}
		parsed = value
	case keyMinTokenCount, keyDimensions:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case keyPositivePPMI, keyStrictDimensions:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	case keyTaggerRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative number: %w", key, domain.ErrInvalidInput)
		}
		parsed = f
	case keyTaggerProvider:
		provider := domain.TaggerProvider(value)
		if !provider.IsValid() {
			return fmt.Errorf("invalid tagger provider %q: %w", value, domain.ErrUnsupportedType)
		}
		parsed = provider.String()
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks that current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Language != "" {
		if _, err := language.Parse(settings.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", settings.Language, domain.ErrInvalidInput)
		}
	}

	if !settings.Tagger.Provider.IsValid() {
		return fmt.Errorf("invalid tagger provider %q: %w", settings.Tagger.Provider, domain.ErrUnsupportedType)
	}

	if err := validateURL(settings.Tagger.BaseURL); err != nil {
		return err
	}

	if settings.Tagger.RequestsPerSecond < 0 {
		return fmt.Errorf("tagger requests per second must not be negative: %w", domain.ErrInvalidInput)
	}

	return domain.NewRunConfig(*settings).Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid tagger base url %q: %w", raw, domain.ErrInvalidInput)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getProvider(defaultVal domain.TaggerProvider) domain.TaggerProvider {
	val := s.configStore.GetString(keyTaggerProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.TaggerProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
