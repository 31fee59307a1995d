package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/tui/styles"
)

// CarouselRow renders one horizontally scrolled discover row. It is the
// rendering surface of a carousel stream.
type CarouselRow struct {
	title  string
	cards  []domain.MediaCard
	cursor int
	offset int

	width   int
	loading bool
	focused bool
	frame   int
}

// NewCarouselRow creates a carousel row.
func NewCarouselRow(title string) *CarouselRow {
	return &CarouselRow{title: title}
}

// Title returns the row's display title.
func (r *CarouselRow) Title() string { return r.title }

// SetWidth sets the rendering width.
func (r *CarouselRow) SetWidth(width int) { r.width = width }

// SetFocused marks the row as the active navigation target.
func (r *CarouselRow) SetFocused(focused bool) { r.focused = focused }

// SetSpinnerFrame advances the loading animation.
func (r *CarouselRow) SetSpinnerFrame(frame int) { r.frame = frame }

// SetLoading shows the loading placeholder.
func (r *CarouselRow) SetLoading() { r.loading = true }

// ClearLoading removes the loading placeholder.
func (r *CarouselRow) ClearLoading() { r.loading = false }

// RenderPage replaces the row contents with a fresh first page.
func (r *CarouselRow) RenderPage(items []domain.MediaCard) {
	r.cards = append([]domain.MediaCard(nil), items...)
	r.cursor = 0
	r.offset = 0
}

// AppendPage appends a subsequent page to the row.
func (r *CarouselRow) AppendPage(items []domain.MediaCard) {
	r.cards = append(r.cards, items...)
}

// ClearGrid removes all rendered cards.
func (r *CarouselRow) ClearGrid() {
	r.cards = nil
	r.cursor = 0
	r.offset = 0
}

// SyncCard updates every rendered copy of an item to the given state.
// Implements service.CardView.
func (r *CarouselRow) SyncCard(tmdbID int64, mediaType domain.MediaType, state domain.CardState) {
	for i := range r.cards {
		if r.cards[i].TmdbID == tmdbID && r.cards[i].MediaType == mediaType {
			setCardState(&r.cards[i], state)
		}
	}
}

// Len returns the number of rendered cards.
func (r *CarouselRow) Len() int { return len(r.cards) }

// Selected returns the card under the cursor.
func (r *CarouselRow) Selected() (domain.MediaCard, bool) {
	if r.cursor < 0 || r.cursor >= len(r.cards) {
		return domain.MediaCard{}, false
	}
	return r.cards[r.cursor], true
}

// MoveLeft moves the cursor one card left.
func (r *CarouselRow) MoveLeft() {
	if r.cursor > 0 {
		r.cursor--
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
}

// MoveRight moves the cursor one card right.
func (r *CarouselRow) MoveRight() {
	if r.cursor < len(r.cards)-1 {
		r.cursor++
	}
	visible := r.visibleCount()
	if r.cursor >= r.offset+visible {
		r.offset = r.cursor - visible + 1
	}
}

// NearEnd reports whether the cursor is close enough to the tail that the
// next page should be fetched.
func (r *CarouselRow) NearEnd() bool {
	if len(r.cards) == 0 {
		return false
	}
	return r.cursor >= len(r.cards)-3
}

const carouselCellWidth = 18

func (r *CarouselRow) visibleCount() int {
	n := r.width / (carouselCellWidth + 2)
	if n < 1 {
		n = 1
	}
	return n
}

// View renders the row.
func (r *CarouselRow) View() string {
	header := styles.TitleStyle.Render(r.title)
	if r.loading && len(r.cards) == 0 {
		spinner := spinnerFrames[r.frame%len(spinnerFrames)]
		return header + "\n" + styles.SpinnerStyle.Render(spinner) + " " + styles.DimStyle.Render("Loading...")
	}
	if len(r.cards) == 0 {
		return header + "\n" + styles.DimStyle.Render("No results")
	}

	visible := r.visibleCount()
	end := r.offset + visible
	if end > len(r.cards) {
		end = len(r.cards)
	}

	cells := make([]string, 0, visible)
	for i := r.offset; i < end; i++ {
		card := r.cards[i]
		style := styles.GridCellStyle
		if r.focused && i == r.cursor {
			style = styles.GridCellSelectedStyle
		}
		label := styles.Truncate(card.Title, carouselCellWidth)
		if badge := stateBadge(card.State()); badge != "" {
			label = badge + " " + styles.Truncate(card.Title, carouselCellWidth-2)
		}
		cells = append(cells, style.Width(carouselCellWidth).Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if r.loading {
		spinner := spinnerFrames[r.frame%len(spinnerFrames)]
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " "+styles.SpinnerStyle.Render(spinner))
	}
	return header + "\n" + row
}
