// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionProvider
	SectionEdit
)

// Setting keys with dedicated editors.
const (
	keyProvider         = "tagger.provider"
	keyPositivePPMI     = "similarity.positive_ppmi"
	keyStrictDimensions = "similarity.strict_dimensions"
)

var errNoSettingsService = errors.New("settings service not available")

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	keys     []string
	err      error
	notice   string

	section  Section
	selected int
	cursor   int
	field    *input.Field

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	field := input.NewField(s, "Value", "")
	field.Blur()

	var keys []string
	if settingsService != nil {
		keys = settingsService.Keys()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		keys:            keys,
		field:           field,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: errNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) save(key, value string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingSaved{Key: key, Err: errNoSettingsService}
		}
		return messages.SettingSaved{Key: key, Err: v.settingsService.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = "Saved " + msg.Key
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.section = SectionOverview
		v.field.Blur()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionProvider:
		return v.handleProviderKeys(msg)
	case SectionEdit:
		return v.handleEditKeys(msg)
	}
	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case "enter":
		if v.settings == nil || len(v.keys) == 0 {
			return v, nil
		}
		key := v.keys[v.selected]
		v.notice = ""
		switch key {
		case keyProvider:
			v.section = SectionProvider
			v.cursor = providerIndex(v.settings.Tagger.Provider)
			return v, nil
		case keyPositivePPMI, keyStrictDimensions:
			current, _ := strconv.ParseBool(settingValue(v.settings, key))
			return v, v.save(key, strconv.FormatBool(!current))
		default:
			v.section = SectionEdit
			v.field.SetLabel(key)
			v.field.SetValue(settingValue(v.settings, key))
			return v, v.field.Focus()
		}
	}
	return v, nil
}

func (v *View) handleProviderKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	providers := domain.AllTaggerProviders()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(providers)-1 {
			v.cursor++
		}
	case "enter":
		v.section = SectionOverview
		return v, v.save(keyProvider, providers[v.cursor].String())
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		v.section = SectionOverview
		v.field.Blur()
		return v, v.save(v.field.Label(), strings.TrimSpace(v.field.Value()))
	}
	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

func providerIndex(provider domain.TaggerProvider) int {
	for i, p := range domain.AllTaggerProviders() {
		if p == provider {
			return i
		}
	}
	return 0
}

// settingValue renders the stored value of a setting key.
func settingValue(s *domain.AppSettings, key string) string {
	switch key {
	case "language":
		return s.Language
	case "output_dir":
		return s.OutputDir
	case "similarity.min_token_count":
		return strconv.Itoa(s.Similarity.MinTokenCount)
	case "similarity.dimensions":
		return strconv.Itoa(s.Similarity.Dimensions)
	case keyPositivePPMI:
		return strconv.FormatBool(s.Similarity.PositivePPMI)
	case keyStrictDimensions:
		return strconv.FormatBool(s.Similarity.StrictDimensions)
	case keyProvider:
		return s.Tagger.Provider.String()
	case "tagger.base_url":
		return s.Tagger.BaseURL
	case "tagger.model":
		return s.Tagger.Model
	case "tagger.requests_per_second":
		return strconv.FormatFloat(s.Tagger.RequestsPerSecond, 'g', -1, 64)
	default:
		return ""
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		if v.err == nil {
			b.WriteString(v.styles.Muted.Render("Loading settings..."))
			b.WriteString("\n\n")
		}
		b.WriteString(v.renderHelp())
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionProvider:
		b.WriteString(v.renderProviderSelect())
	case SectionEdit:
		b.WriteString(v.field.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	width := 0
	for _, k := range v.keys {
		width = max(width, len(k))
	}

	for i, key := range v.keys {
		value := settingValue(v.settings, key)
		if value == "" {
			value = "(not set)"
		}
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%-*s  %s", indicator, width, key, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Neutral.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderProviderSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select Tagger Provider"))
	b.WriteString("\n\n")

	for i, provider := range domain.AllTaggerProviders() {
		indicator := "  "
		if i == v.cursor {
			indicator = "> "
		}
		current := ""
		if provider == v.settings.Tagger.Provider {
			current = " (current)"
		}
		line := indicator + provider.Description() + current
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
		if model := provider.DefaultModel(v.settings.Language); model != "" {
			b.WriteString(v.styles.Muted.Render("    Model: " + model))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionProvider:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionEdit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.field.SetWidth(width)
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.cursor = 0
	v.err = nil
	v.notice = ""
	v.field.Reset()
	v.field.Blur()
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
