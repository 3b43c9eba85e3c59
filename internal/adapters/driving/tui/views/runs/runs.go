// Package runs provides the similarity runs list view for the TUI.
package runs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

var errNoRunService = errors.New("run service not available")

// View lists persisted similarity runs, newest first.
type View struct {
	styles     *styles.Styles
	runService driving.RunService

	runs     []domain.Run
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
	deleting string
}

// NewView creates a new runs view.
func NewView(s *styles.Styles, runService driving.RunService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		runService: runService,
		runs:       []domain.Run{},
	}
}

// Init initialises the view and loads runs.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadRuns()
}

// loadRuns returns a command that loads runs from the service.
func (v *View) loadRuns() tea.Cmd {
	return func() tea.Msg {
		if v.runService == nil {
			return messages.RunsLoaded{Err: errNoRunService}
		}
		runs, err := v.runService.List(context.Background())
		return messages.RunsLoaded{Runs: runs, Err: err}
	}
}

// Update handles messages for the runs view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RunsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.runs = msg.Runs
		v.err = nil
		if v.selected >= len(v.runs) {
			v.selected = max(0, len(v.runs)-1)
		}
		return v, nil

	case messages.RunDeleted:
		v.deleting = ""
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.loading = true
		return v, v.loadRuns()
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.deleting != "" {
		id := v.deleting
		v.deleting = ""
		if msg.String() == "y" {
			return v, v.deleteRun(id)
		}
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.runs)-1 {
			v.selected++
		}
	case "enter":
		if run := v.SelectedRun(); run != nil {
			selected := *run
			return v, func() tea.Msg {
				return messages.RunSelected{Run: selected}
			}
		}
	case "d", "delete":
		if run := v.SelectedRun(); run != nil {
			v.deleting = run.ID
		}
	case "r":
		v.loading = true
		return v, v.loadRuns()
	}

	return v, nil
}

// deleteRun returns a command that deletes a run.
func (v *View) deleteRun(id string) tea.Cmd {
	return func() tea.Msg {
		if v.runService == nil {
			return messages.RunDeleted{ID: id, Err: errNoRunService}
		}
		return messages.RunDeleted{ID: id, Err: v.runService.Delete(context.Background(), id)}
	}
}

// View renders the runs view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Similarity runs"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading runs..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.runs) == 0:
		b.WriteString(v.styles.Muted.Render("No runs yet. Compute one with: ordo similarity"))
	default:
		for i := range v.runs {
			b.WriteString(v.renderRun(i, &v.runs[i]))
			b.WriteString("\n")
		}
		if v.deleting != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Error.Render(fmt.Sprintf("Delete run %s? [y/N]", v.deleting)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] scores  [d] delete  [r] reload  [esc] back  [q] quit"))
	return b.String()
}

// renderRun renders a single run line.
func (v *View) renderRun(index int, run *domain.Run) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	id := run.ID
	if len(id) > 8 {
		id = id[:8]
	}
	when := run.CreatedAt.Local().Format(time.DateTime)
	detail := fmt.Sprintf("%-4s %4d adj  %3d dims", run.Language, run.Summary.Adjectives, run.Summary.Dimensions)
	if run.Summary.Clamped() {
		detail += fmt.Sprintf(" (of %d)", run.Summary.RequestedDimensions)
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s  %s  %s", indicator, id, when, detail))
	}
	return v.styles.Normal.Render(indicator+id+"  ") +
		v.styles.Muted.Render(when+"  ") +
		v.styles.Normal.Render(detail)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Runs returns the current list of runs.
func (v *View) Runs() []domain.Run {
	return v.runs
}

// SelectedIndex returns the currently selected run index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedRun returns the highlighted run, or nil if there are none.
func (v *View) SelectedRun() *domain.Run {
	if v.selected < 0 || v.selected >= len(v.runs) {
		return nil
	}
	return &v.runs[v.selected]
}

// PendingDelete returns the ID awaiting delete confirmation.
func (v *View) PendingDelete() string {
	return v.deleting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
