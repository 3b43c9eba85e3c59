// Package status renders the one-line status bar under every browser view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
)

// State selects what the left side of the bar reports.
type State string

// Bar states.
const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateHelp    State = "help"
	StateScores  State = "scores"
)

// Bar shows the browser state on the left and key hints on the right.
// It is passive: the app sets its fields after every message.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	help    help.Model
	state   State
	message string
	subject string
	count   int
	width   int
}

// NewBar creates a status bar. Nil arguments use the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = s.Muted
	h.Styles.ShortDesc = s.Muted
	h.Styles.ShortSeparator = s.Muted

	return &Bar{
		styles: s,
		keymap: km,
		help:   h,
		state:  StateReady,
		width:  80,
	}
}

// View renders the bar padded to its width.
func (s *Bar) View() string {
	left := s.status()
	right := s.help.ShortHelpView(s.bindings())

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) status() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message == "" {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + s.message)
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateScores:
		text := fmt.Sprintf("%d adjectives", s.count)
		if s.subject != "" {
			text = "run " + s.subject + " · " + text
		}
		return s.styles.Normal.Render(text)
	default:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
		return s.styles.Muted.Render("Ready")
	}
}

func (s *Bar) bindings() []key.Binding {
	if s.state == StateScores && s.count > 0 {
		return s.keymap.ScoresHelp()
	}
	return s.keymap.ShortHelp()
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error text, or a notice in the ready state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetSubject names the run whose scores are on display.
func (s *Bar) SetSubject(subject string) {
	s.subject = subject
}

// Subject returns the run on display.
func (s *Bar) Subject() string {
	return s.subject
}

// SetCount sets the number of adjectives on display.
func (s *Bar) SetCount(count int) {
	s.count = count
}

// Count returns the number of adjectives on display.
func (s *Bar) Count() int {
	return s.count
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
	s.help.Width = width / 2
}

// Width returns the bar width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets everything but the width.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.subject = ""
	s.count = 0
}
