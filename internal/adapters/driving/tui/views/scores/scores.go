// Package scores provides the adjective scores view for one similarity run.
package scores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ordo/internal/core/domain"
	"github.com/custodia-labs/ordo/internal/core/ports/driving"
)

var errNoRunService = errors.New("run service not available")

// View shows the scores of a run with filtering and ordering.
type View struct {
	styles     *styles.Styles
	runService driving.RunService
	list       *list.ScoreList
	filter     *input.Field

	run       *domain.Run
	filtering bool
	loading   bool
	err       error
	width     int
	height    int
}

// NewView creates a new scores view.
func NewView(s *styles.Styles, runService driving.RunService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	filter := input.NewField(s, "Filter", "adjective...")
	filter.Blur()
	return &View{
		styles:     s,
		runService: runService,
		list:       list.NewScoreList(s),
		filter:     filter,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRun switches to a run and loads its scores.
func (v *View) SetRun(run domain.Run) tea.Cmd {
	v.run = &run
	v.err = nil
	v.loading = true
	v.filtering = false
	v.filter.Reset()
	v.filter.Blur()
	v.list.SetFilter("")
	v.list.SetScores(nil)
	return v.loadScores(run.ID)
}

func (v *View) loadScores(runID string) tea.Cmd {
	return func() tea.Msg {
		if v.runService == nil {
			return messages.ScoresLoaded{RunID: runID, Err: errNoRunService}
		}
		scores, err := v.runService.Scores(context.Background(), runID)
		return messages.ScoresLoaded{RunID: runID, Scores: scores, Err: err}
	}
}

// Update handles messages for the scores view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ScoresLoaded:
		if v.run == nil || msg.RunID != v.run.ID {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.list.SetScores(msg.Scores)
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.handleFilterKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only keys that end filtering are special
	switch msg.Type {
	case tea.KeyEnter:
		v.filtering = false
		v.filter.Blur()
		return v, nil
	case tea.KeyEsc:
		v.filtering = false
		v.filter.Reset()
		v.filter.Blur()
		v.list.SetFilter("")
		return v, nil
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.list.SetFilter(v.filter.Value())
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "/":
		v.filtering = true
		return v, v.filter.Focus()
	case "s":
		v.list.SetOrder(v.list.Order().Next())
		return v, nil
	case "r":
		if v.run != nil {
			v.loading = true
			return v, v.loadScores(v.run.ID)
		}
		return v, nil
	case "esc":
		if v.list.Filter() != "" {
			v.filter.Reset()
			v.list.SetFilter("")
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewRuns}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the scores view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Scores"))
	if v.run != nil {
		b.WriteString(v.styles.Muted.Render("  " + v.runHeader()))
	}
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading scores..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	default:
		if v.filtering || v.list.Filter() != "" {
			b.WriteString(v.filter.View())
			b.WriteString("\n\n")
		}
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[/] filter  [s] sort  [j/k] navigate  [r] reload  [esc] back"))
	return b.String()
}

func (v *View) runHeader() string {
	s := v.run.Summary
	header := fmt.Sprintf("%s  %s  %d adjectives  %d dims", v.run.ID, v.run.Language, s.Adjectives, s.Dimensions)
	var explained float64
	for _, r := range s.ExplainedVariance {
		explained += r
	}
	if explained > 0 {
		header += fmt.Sprintf("  %.1f%% variance", explained*100)
	}
	return header
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-6)
	v.filter.SetWidth(width)
}

// Run returns the run on display, or nil.
func (v *View) Run() *domain.Run {
	return v.run
}

// Count returns the number of visible adjectives.
func (v *View) Count() int {
	return v.list.Count()
}

// Filtering reports whether the filter input has focus.
func (v *View) Filtering() bool {
	return v.filtering
}

// List returns the underlying score list.
func (v *View) List() *list.ScoreList {
	return v.list
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
