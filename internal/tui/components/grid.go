package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/tui/styles"
)

// Affordance is an action a card offers. Affordances are derived purely from
// the card's resolved state, so re-deriving them after a sync is idempotent.
type Affordance int

const (
	AffordanceRequest Affordance = iota
	AffordanceDelete
	AffordanceDetails
)

// CardAffordances returns the affordances for a card state. An owned card
// never offers request; only a requested card offers delete.
func CardAffordances(state domain.CardState) []Affordance {
	out := []Affordance{AffordanceDetails}
	if state.Requestable() {
		out = append(out, AffordanceRequest)
	}
	if state.Deletable() {
		out = append(out, AffordanceDelete)
	}
	return out
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Grid renders a vertically scrolled grid of media cards. It is the rendering
// surface of one listing stream and receives card state syncs after request
// actions.
type Grid struct {
	title   string
	cards   []domain.MediaCard
	cursor  int
	columns int

	width   int
	height  int
	loading bool
	focused bool
	frame   int
}

// NewGrid creates a grid with the given column count.
func NewGrid(title string, columns int) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{title: title, columns: columns}
}

// SetSize sets the rendering area.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetFocused marks the grid as the active navigation target.
func (g *Grid) SetFocused(focused bool) { g.focused = focused }

// SetSpinnerFrame advances the loading animation.
func (g *Grid) SetSpinnerFrame(frame int) { g.frame = frame }

// SetLoading shows the first-page loading placeholder.
func (g *Grid) SetLoading() { g.loading = true }

// ClearLoading removes the loading placeholder.
func (g *Grid) ClearLoading() { g.loading = false }

// RenderPage replaces the grid contents with a fresh first page.
func (g *Grid) RenderPage(items []domain.MediaCard) {
	g.cards = append([]domain.MediaCard(nil), items...)
	g.cursor = 0
}

// AppendPage appends a subsequent page to the grid.
func (g *Grid) AppendPage(items []domain.MediaCard) {
	g.cards = append(g.cards, items...)
}

// ClearGrid removes all rendered cards.
func (g *Grid) ClearGrid() {
	g.cards = nil
	g.cursor = 0
}

// SyncCard updates every rendered copy of an item to the given state.
// Implements service.CardView.
func (g *Grid) SyncCard(tmdbID int64, mediaType domain.MediaType, state domain.CardState) {
	for i := range g.cards {
		if g.cards[i].TmdbID == tmdbID && g.cards[i].MediaType == mediaType {
			setCardState(&g.cards[i], state)
		}
	}
}

// setCardState rewrites a card's flags so card.State() resolves to state.
func setCardState(c *domain.MediaCard, state domain.CardState) {
	c.InLibrary = state == domain.CardComplete
	c.Partial = state == domain.CardRequested
	c.Importable = false
	c.Pending = state == domain.CardPending
}

// Cards returns the rendered cards.
func (g *Grid) Cards() []domain.MediaCard { return g.cards }

// Len returns the number of rendered cards.
func (g *Grid) Len() int { return len(g.cards) }

// Loading reports whether the placeholder is showing.
func (g *Grid) Loading() bool { return g.loading }

// Selected returns the card under the cursor.
func (g *Grid) Selected() (domain.MediaCard, bool) {
	if g.cursor < 0 || g.cursor >= len(g.cards) {
		return domain.MediaCard{}, false
	}
	return g.cards[g.cursor], true
}

// Cursor movement

func (g *Grid) MoveUp() {
	if g.cursor-g.columns >= 0 {
		g.cursor -= g.columns
	}
}

func (g *Grid) MoveDown() {
	if g.cursor+g.columns < len(g.cards) {
		g.cursor += g.columns
	}
}

func (g *Grid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

func (g *Grid) MoveRight() {
	if g.cursor < len(g.cards)-1 {
		g.cursor++
	}
}

// NearEnd reports whether the cursor sits in the last two rows, the trigger
// for fetching the next page.
func (g *Grid) NearEnd() bool {
	if len(g.cards) == 0 {
		return false
	}
	return g.cursor >= len(g.cards)-2*g.columns
}

// View renders the grid.
func (g *Grid) View() string {
	if g.loading && len(g.cards) == 0 {
		spinner := spinnerFrames[g.frame%len(spinnerFrames)]
		return styles.SpinnerStyle.Render(spinner) + " " + styles.DimStyle.Render("Loading "+g.title+"...")
	}
	if len(g.cards) == 0 {
		return styles.DimStyle.Render("No results")
	}

	cellWidth := g.width/g.columns - 4
	if cellWidth < 12 {
		cellWidth = 12
	}

	var rows []string
	for start := 0; start < len(g.cards); start += g.columns {
		end := start + g.columns
		if end > len(g.cards) {
			end = len(g.cards)
		}
		cells := make([]string, 0, g.columns)
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	body := strings.Join(rows, "\n")
	if g.loading {
		spinner := spinnerFrames[g.frame%len(spinnerFrames)]
		body += "\n" + styles.SpinnerStyle.Render(spinner) + " " + styles.DimStyle.Render("Loading more...")
	}
	return body
}

func (g *Grid) renderCell(i, width int) string {
	card := g.cards[i]
	style := styles.GridCellStyle
	if g.focused && i == g.cursor {
		style = styles.GridCellSelectedStyle
	}

	title := styles.Truncate(card.Title, width)
	line2 := ""
	if card.Year > 0 {
		line2 = fmt.Sprintf("%d", card.Year)
	}
	if card.VoteAverage > 0 {
		if line2 != "" {
			line2 += "  "
		}
		line2 += fmt.Sprintf("★%.1f", card.VoteAverage)
	}

	badge := stateBadge(card.State())
	header := title
	if badge != "" {
		header = badge + " " + styles.Truncate(card.Title, width-2)
	}

	return style.Width(width).Render(header + "\n" + styles.DimStyle.Render(styles.Pad(line2, width)))
}

func stateBadge(state domain.CardState) string {
	switch state {
	case domain.CardComplete:
		return styles.CompleteBadge
	case domain.CardRequested:
		return styles.RequestedBadge
	case domain.CardPending:
		return styles.PendingBadge
	default:
		return ""
	}
}
