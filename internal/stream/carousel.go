package stream

import (
	"log/slog"

	"github.com/requestarr/requestarr/internal/domain"
)

// MaxCarouselPages bounds how many pages a carousel will ever fetch in one
// session. Carousels are not primary navigation, so the cap limits worst-case
// backend calls even when the server keeps reporting more results.
const MaxCarouselPages = 5

// Carousel paginates one horizontally scrolled result row (trending, popular
// movies, popular TV, smart recommendations). It carries the same
// token/selection guard as Listing plus the page cap, and only ever appends:
// an already-loaded page is never fetched twice.
type Carousel struct {
	name     string
	grid     GridPort
	pageSize int
	logger   *slog.Logger

	visible VisibilityFunc

	page      int
	hasMore   bool
	isLoading bool
	token     uint64
	selection domain.InstanceRef
}

// NewCarousel creates a carousel rendering into grid.
func NewCarousel(name string, grid GridPort, pageSize int, logger *slog.Logger) *Carousel {
	if grid == nil {
		grid = NopGrid{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Carousel{
		name:     name,
		grid:     grid,
		pageSize: pageSize,
		logger:   logger,
		page:     1,
		hasMore:  true,
	}
}

// SetGrid swaps the rendering surface.
func (c *Carousel) SetGrid(grid GridPort) {
	if grid == nil {
		grid = NopGrid{}
	}
	c.grid = grid
}

// SetVisibility installs the hidden/blacklist filter applied before rendering.
func (c *Carousel) SetVisibility(fn VisibilityFunc) {
	c.visible = fn
}

// Name identifies the carousel in logs and view lookups.
func (c *Carousel) Name() string { return c.name }

// Selection returns the instance the carousel is currently bound to.
func (c *Carousel) Selection() domain.InstanceRef { return c.selection }

// Page returns the next page to be fetched (1-based).
func (c *Carousel) Page() int { return c.page }

// HasMore reports whether another page may be fetched.
func (c *Carousel) HasMore() bool { return c.hasMore }

// Loading reports whether a fetch is in flight.
func (c *Carousel) Loading() bool { return c.isLoading }

// SetInstance rebinds the carousel and discards everything loaded so far.
func (c *Carousel) SetInstance(ref domain.InstanceRef) {
	c.token++
	c.selection = ref
	c.page = 1
	c.hasMore = true
	c.isLoading = false
	c.grid.ClearGrid()
	c.logger.Debug("carousel instance switched",
		"carousel", c.name, "instance", ref.Encode(), "token", c.token)
}

// CanLoadMore reports whether a scroll-proximity trigger should fetch.
func (c *Carousel) CanLoadMore() bool {
	return c.hasMore && !c.isLoading && c.page <= MaxCarouselPages
}

// Begin issues a fetch for the current page under the token guard.
func (c *Carousel) Begin() (Ticket, bool) {
	if !c.CanLoadMore() {
		return Ticket{}, false
	}
	c.isLoading = true
	if c.page == 1 {
		c.grid.SetLoading()
	}
	t := Ticket{Token: c.token, Instance: c.selection, Page: c.page}
	c.logger.Debug("carousel fetch issued",
		"carousel", c.name, "page", t.Page, "token", t.Token)
	return t, true
}

// Resolve settles a carousel fetch. Pages only ever append; the cap flips
// hasMore off once the final allowed page has been applied, regardless of the
// count-based heuristic.
func (c *Carousel) Resolve(t Ticket, pg domain.Page, err error) Outcome {
	if t.Page == 1 {
		c.grid.ClearLoading()
	}
	c.isLoading = false

	if t.Token != c.token || t.Instance != c.selection {
		c.logger.Debug("carousel response discarded",
			"carousel", c.name, "page", t.Page,
			"issuedToken", t.Token, "currentToken", c.token)
		return OutcomeDiscarded
	}

	if err != nil {
		c.logger.Error("carousel fetch failed",
			"carousel", c.name, "page", t.Page, "error", err)
		return OutcomeFailed
	}

	items := c.filterVisible(pg.Items)
	if t.Page == 1 {
		c.grid.RenderPage(items)
	} else {
		c.grid.AppendPage(items)
	}
	c.page = t.Page + 1

	switch {
	case t.Page >= MaxCarouselPages:
		c.hasMore = false
	case pg.HasMore != nil:
		c.hasMore = *pg.HasMore
	default:
		c.hasMore = pg.RawCount >= c.pageSize
	}

	c.logger.Debug("carousel page applied",
		"carousel", c.name, "page", t.Page, "hasMore", c.hasMore)
	return OutcomeApplied
}

func (c *Carousel) filterVisible(items []domain.MediaCard) []domain.MediaCard {
	if c.visible == nil {
		return items
	}
	out := make([]domain.MediaCard, 0, len(items))
	for _, it := range items {
		if c.visible(it) {
			out = append(out, it)
		}
	}
	return out
}
