// Package menu provides the entry view of the runs browser.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
)

// Item is a menu entry. Entries without a view quit the browser.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// View lists the browser sections.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the menu.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Runs", Hint: "saved similarity runs and their scores", View: messages.ViewRuns},
			{Label: "Settings", Hint: "language, tagger and similarity defaults", View: messages.ViewSettings},
			{Label: "Help", Hint: "keybindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and opens entries. Digits open an entry directly.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keys.Up):
			v.selected = max(v.selected-1, 0)
		case keymap.Matches(k, v.keys.Down):
			v.selected = min(v.selected+1, len(v.items)-1)
		case keymap.Matches(k, v.keys.Select):
			return v, v.open(v.selected)
		case keymap.Matches(k, v.keys.Help):
			return v, changeView(messages.ViewHelp)
		case keymap.Matches(k, v.keys.Quit):
			return v, tea.Quit
		case len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(v.items):
			v.selected = int(k[0] - '1')
			return v, v.open(v.selected)
		}
	}

	return v, nil
}

func (v *View) open(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return changeView(item.View)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("ordo"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Adjective order similarity runs"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d  %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		if item.Hint != "" && v.width >= 60 {
			b.WriteString("  ")
			b.WriteString(v.styles.Muted.Render(item.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("j/k move · enter open · 1-4 jump · ? help · q quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Items returns the menu entries.
func (v *View) Items() []Item {
	return v.items
}

// Selected returns the cursor position.
func (v *View) Selected() int {
	return v.selected
}
