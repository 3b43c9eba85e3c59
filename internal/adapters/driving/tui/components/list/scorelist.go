// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ordo/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ordo/internal/core/domain"
)

// Order is the ordering applied to a score list.
type Order int

// Available orderings.
const (
	// OrderVocabulary keeps the order the run stored.
	OrderVocabulary Order = iota
	// OrderDescending puts the most similar adjectives first.
	OrderDescending
	// OrderAscending puts the most divergent adjectives first.
	OrderAscending
)

// String returns the string representation of the order.
func (o Order) String() string {
	switch o {
	case OrderDescending:
		return "most similar first"
	case OrderAscending:
		return "least similar first"
	default:
		return "vocabulary"
	}
}

// Next returns the order that follows o when cycling.
func (o Order) Next() Order {
	return (o + 1) % 3
}

const barWidth = 20

// ScoreList displays similarity scores in a navigable list.
type ScoreList struct {
	scores   []domain.SimilarityScore
	visible  []domain.SimilarityScore
	filter   string
	order    Order
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewScoreList creates a new score list component.
func NewScoreList(s *styles.Styles) *ScoreList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ScoreList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the score list.
func (r *ScoreList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ScoreList) Update(msg tea.Msg) (*ScoreList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			if len(r.visible) > 0 {
				r.selected = len(r.visible) - 1
			}
		}
	}
	return r, nil
}

// View renders the score list.
func (r *ScoreList) View() string {
	if len(r.visible) == 0 {
		if r.filter != "" {
			return r.styles.Muted.Render(fmt.Sprintf("No adjectives match %q", r.filter))
		}
		return r.styles.Muted.Render("No scores")
	}

	lines := make([]string, 0, len(r.visible)+2)
	header := r.styles.Subtitle.Render(
		fmt.Sprintf("Adjectives (%d of %d, %s)", len(r.visible), len(r.scores), r.order))
	lines = append(lines, header, "")

	visibleCount := r.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.visible) {
		end = len(r.visible)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderScore(i, r.visible[i]))
	}

	return strings.Join(lines, "\n")
}

// renderScore formats a single adjective with its cosine and bar.
func (r *ScoreList) renderScore(index int, score domain.SimilarityScore) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	nameWidth := r.width - barWidth - 16
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := score.Adjective
	if len(name) > nameWidth {
		name = name[:nameWidth-3] + "..."
	}

	cosine := fmt.Sprintf("%+.3f", score.Cosine)
	bar := styles.Bar(score.Cosine, barWidth)

	if index == r.selected {
		return r.styles.Selected.Render(fmt.Sprintf("%s%-*s %s %s", indicator, nameWidth, name, cosine, bar))
	}
	return r.styles.Normal.Render(fmt.Sprintf("%s%-*s ", indicator, nameWidth, name)) +
		r.styles.Cosine(score.Cosine).Render(cosine+" "+bar)
}

// SetScores replaces the scores and resets the selection.
func (r *ScoreList) SetScores(scores []domain.SimilarityScore) {
	r.scores = scores
	r.refresh()
}

// Scores returns every score, unfiltered.
func (r *ScoreList) Scores() []domain.SimilarityScore {
	return r.scores
}

// Visible returns the filtered, ordered scores.
func (r *ScoreList) Visible() []domain.SimilarityScore {
	return r.visible
}

// SetFilter keeps only adjectives containing the given text.
func (r *ScoreList) SetFilter(filter string) {
	r.filter = strings.ToLower(strings.TrimSpace(filter))
	r.refresh()
}

// Filter returns the active filter.
func (r *ScoreList) Filter() string {
	return r.filter
}

// SetOrder changes the ordering.
func (r *ScoreList) SetOrder(order Order) {
	r.order = order
	r.refresh()
}

// Order returns the active ordering.
func (r *ScoreList) Order() Order {
	return r.order
}

func (r *ScoreList) refresh() {
	visible := make([]domain.SimilarityScore, 0, len(r.scores))
	for _, s := range r.scores {
		if r.filter == "" || strings.Contains(strings.ToLower(s.Adjective), r.filter) {
			visible = append(visible, s)
		}
	}

	switch r.order {
	case OrderDescending:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Cosine > visible[j].Cosine })
	case OrderAscending:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Cosine < visible[j].Cosine })
	case OrderVocabulary:
	}

	r.visible = visible
	r.selected = 0
}

// Selected returns the index of the selected score.
func (r *ScoreList) Selected() int {
	return r.selected
}

// SelectedScore returns the currently selected score, or nil if none.
func (r *ScoreList) SelectedScore() *domain.SimilarityScore {
	if r.selected < 0 || r.selected >= len(r.visible) {
		return nil
	}
	return &r.visible[r.selected]
}

// MoveUp moves selection up.
func (r *ScoreList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ScoreList) MoveDown() {
	if r.selected < len(r.visible)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ScoreList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of visible scores.
func (r *ScoreList) Count() int {
	return len(r.visible)
}
