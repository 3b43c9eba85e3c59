package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/views/runs"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/views/scores"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/ordo/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	runsView     *runs.View
	scoresView   *scores.View
	settingsView *settings.View
	statusBar    *status.Bar

	// selectedRun is the run shown in the scores view.
	selectedRun *domain.Run

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s),
		runsView:     runs.NewView(s, ports.Runs),
		scoresView:   scores.NewView(s, ports.Runs),
		settingsView: settings.NewView(s, ports.Settings),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("ordo - similarity runs"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.RunSelected:
		run := msg.Run
		a.selectedRun = &run
		a.currentView = messages.ViewScores
		a.statusBar.SetState(status.StateLoading)
		return a, a.scoresView.SetRun(run)

	case messages.RunsLoaded:
		a.runsView, cmd = a.runsView.Update(msg)
		a.syncStatus(a.runsView.Err())
		return a, cmd

	case messages.RunDeleted:
		a.runsView, cmd = a.runsView.Update(msg)
		a.syncStatus(a.runsView.Err())
		if msg.Err == nil {
			a.statusBar.SetMessage("Deleted run " + shortID(msg.ID))
		}
		return a, cmd

	case messages.ScoresLoaded:
		a.scoresView, cmd = a.scoresView.Update(msg)
		a.syncStatus(a.scoresView.Err())
		return a, cmd

	case messages.SettingsLoaded, messages.SettingSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// updateKey forwards a key press to the active view.
func (a *App) updateKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)

	case messages.ViewRuns:
		switch msg.String() {
		case "esc":
			if a.runsView.PendingDelete() == "" {
				return a.switchView(messages.ViewMenu)
			}
		case "q":
			if a.runsView.PendingDelete() == "" {
				return tea.Quit
			}
		}
		a.runsView, cmd = a.runsView.Update(msg)

	case messages.ViewScores:
		a.scoresView, cmd = a.scoresView.Update(msg)
		a.statusBar.SetCount(a.scoresView.Count())

	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			return a.switchView(messages.ViewMenu)
		}
	}
	return cmd
}

// switchView activates a view and runs its initialisation.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.statusBar.Clear()

	switch view {
	case messages.ViewRuns:
		a.statusBar.SetState(status.StateLoading)
		return a.runsView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewScores:
		a.statusBar.SetState(status.StateScores)
		a.statusBar.SetCount(a.scoresView.Count())
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewMenu:
	}
	return nil
}

// syncStatus reflects a view's load outcome in the status bar.
func (a *App) syncStatus(err error) {
	a.err = err
	if err != nil {
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(err.Error())
		return
	}
	if a.statusBar.State() == status.StateError {
		a.statusBar.SetMessage("")
	}
	if a.currentView == messages.ViewScores {
		a.statusBar.SetState(status.StateScores)
		a.statusBar.SetCount(a.scoresView.Count())
		if a.selectedRun != nil {
			a.statusBar.SetSubject(shortID(a.selectedRun.ID))
		}
		return
	}
	a.statusBar.SetState(status.StateReady)
}

// shortID abbreviates a run ID the way the runs view lists it.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewRuns:
		return a.withStatus(a.runsView.View())
	case messages.ViewScores:
		return a.withStatus(a.scoresView.View())
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.withStatus(a.viewHelp())
	default:
		return a.menuView.View()
	}
}

func (a *App) withStatus(body string) string {
	return body + "\n\n" + a.statusBar.View()
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("Cosine colours: similar >= 0.5, divergent < 0.1"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedRun returns the run shown in the scores view, or nil.
func (a *App) SelectedRun() *domain.Run {
	return a.selectedRun
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.runsView.SetDimensions(width, height)
	a.scoresView.SetDimensions(width, height-2)
	a.settingsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
