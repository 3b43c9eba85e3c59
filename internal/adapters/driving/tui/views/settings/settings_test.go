package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) Keys() []string {
	return []string{
		"language",
		"output_dir",
		"similarity.min_token_count",
		"similarity.dimensions",
		"similarity.positive_ppmi",
		"similarity.strict_dimensions",
		"tagger.provider",
		"tagger.base_url",
		"tagger.model",
		"tagger.requests_per_second",
	}
}

func (m *MockSettingsService) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func testSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Language = "it"
	return &s
}

func loadedView(t *testing.T, svc *MockSettingsService) *View {
	t.Helper()
	svc.On("Get").Return(testSettings(), nil)
	svc.On("Validate").Return(nil).Maybe()
	view := NewView(nil, svc)
	view.SetDimensions(100, 30)
	view.Update(view.Init()())
	require.NotNil(t, view.Settings())
	return view
}

func down(view *View, n int) {
	for i := 0; i < n; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
}

func TestView_Overview(t *testing.T) {
	view := loadedView(t, &MockSettingsService{})

	out := view.View()

	assert.Contains(t, out, "language")
	assert.Contains(t, out, "similarity.dimensions")
	assert.Contains(t, out, "128")
	assert.Contains(t, out, "(not set)")
	assert.Contains(t, out, "Configuration is valid")
}

func TestView_ValidationWarning(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Validate").Return(errors.New("language is not set"))
	view := loadedView(t, svc)

	assert.Contains(t, view.View(), "Warning: language is not set")
}

func TestView_LoadError(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Get").Return(nil, errors.New("config unreadable"))
	view := NewView(nil, svc)

	view.Update(view.Init()())

	require.Error(t, view.Err())
	assert.Contains(t, view.View(), "config unreadable")
}

func TestView_NoService(t *testing.T) {
	view := NewView(nil, nil)

	msg := view.Init()()

	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, errNoSettingsService)
}

func TestView_EditTextSetting(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", "tagger.model", "it_core_news_lg").Return(nil).Once()
	view := loadedView(t, svc)
	down(view, 8)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	require.Equal(t, SectionEdit, view.Section())
	for _, r := range "it_core_news_lg" {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, SectionOverview, view.Section())
	assert.Equal(t, messages.SettingSaved{Key: "tagger.model"}, msg)
	_, reload := view.Update(msg)
	assert.NotNil(t, reload)
	assert.Contains(t, view.View(), "Saved tagger.model")
	svc.AssertExpectations(t)
}

func TestView_EditCancelled(t *testing.T) {
	view := loadedView(t, &MockSettingsService{})

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, SectionEdit, view.Section())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, SectionOverview, view.Section())
}

func TestView_ToggleBoolean(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", "similarity.positive_ppmi", "false").Return(nil).Once()
	view := loadedView(t, svc)
	down(view, 4)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, SectionOverview, view.Section())
	svc.AssertExpectations(t)
}

func TestView_SelectProvider(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", "tagger.provider", "stanza").Return(nil).Once()
	view := loadedView(t, svc)
	down(view, 6)

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, SectionProvider, view.Section())
	assert.Contains(t, view.View(), "it_core_news_sm")

	down(view, 1)
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	svc.AssertExpectations(t)
}

func TestView_SaveError(t *testing.T) {
	view := loadedView(t, &MockSettingsService{})

	_, cmd := view.Update(messages.SettingSaved{Key: "similarity.dimensions", Err: domain.ErrInvalidInput})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, view.Err(), domain.ErrInvalidInput)
}

func TestView_EscFromOverviewReturnsToMenu(t *testing.T) {
	view := loadedView(t, &MockSettingsService{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Reset(t *testing.T) {
	view := loadedView(t, &MockSettingsService{})
	down(view, 3)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view.Reset()

	assert.Equal(t, SectionOverview, view.Section())
	assert.NoError(t, view.Err())
}

func TestSettingValue(t *testing.T) {
	s := testSettings()
	s.Tagger.RequestsPerSecond = 2.5

	tests := map[string]string{
		"language":                     "it",
		"output_dir":                   ".",
		"similarity.min_token_count":   "2",
		"similarity.strict_dimensions": "false",
		"tagger.provider":              "spacy",
		"tagger.base_url":              "http://localhost:8080",
		"tagger.requests_per_second":   "2.5",
		"unknown":                      "",
	}

	for key, expected := range tests {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, expected, settingValue(s, key))
		})
	}
}
