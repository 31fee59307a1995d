// Package stream implements the stale-request guard used by every paginated
// listing in the client. Fetches are issued against a snapshot of the stream's
// generation token and instance selection; a response is applied only when
// both still match at resolution time, so the view always converges to the
// latest user selection no matter how slow or out-of-order responses arrive.
package stream

import (
	"log/slog"

	"github.com/requestarr/requestarr/internal/domain"
)

// Ticket is the copy-on-issue snapshot captured when a fetch is started.
// It travels with the fetch and is compared against the stream's live state
// when the response resolves.
type Ticket struct {
	Token    uint64
	Instance domain.InstanceRef
	Page     int
}

// Outcome reports what a resolution did to the stream.
type Outcome int

const (
	// OutcomeApplied means the page was rendered and the cursor advanced.
	OutcomeApplied Outcome = iota
	// OutcomeDiscarded means the response was stale and ignored. Not an
	// error; the normal fate of superseded requests.
	OutcomeDiscarded
	// OutcomeFailed means the fetch itself errored; cursor and hasMore are
	// untouched so the caller may surface a toast and retry.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "failed"
	}
}

// VisibilityFunc filters fetched cards before rendering. Items it rejects are
// not drawn but still count toward the server's page size when deciding
// hasMore.
type VisibilityFunc func(domain.MediaCard) bool

// Listing owns the pagination state of one independently paginated stream
// (Movies, TV). All mutation happens on the event-loop goroutine; the guard
// protects against logical staleness, not data races.
type Listing struct {
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

// NewListing creates a listing stream rendering into grid.
func NewListing(name string, grid GridPort, pageSize int, logger *slog.Logger) *Listing {
	if grid == nil {
		grid = NopGrid{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Listing{
		name:     name,
		grid:     grid,
		pageSize: pageSize,
		logger:   logger,
		page:     1,
		hasMore:  true,
	}
}

// SetGrid swaps the rendering surface, e.g. when the backing view mounts.
func (l *Listing) SetGrid(grid GridPort) {
	if grid == nil {
		grid = NopGrid{}
	}
	l.grid = grid
}

// SetVisibility installs the hidden/blacklist filter applied before rendering.
func (l *Listing) SetVisibility(fn VisibilityFunc) {
	l.visible = fn
}

// Selection returns the instance the stream is currently bound to.
func (l *Listing) Selection() domain.InstanceRef { return l.selection }

// Page returns the next page to be fetched (1-based).
func (l *Listing) Page() int { return l.page }

// HasMore reports whether another page is believed to exist.
func (l *Listing) HasMore() bool { return l.hasMore }

// Loading reports whether a fetch is in flight.
func (l *Listing) Loading() bool { return l.isLoading }

// SetInstance switches the stream to a new backend instance. Pages loaded for
// the old instance are discarded wholesale: the generation token is bumped so
// any in-flight response resolves stale, the cursor rewinds to page 1, and
// the grid is cleared.
func (l *Listing) SetInstance(ref domain.InstanceRef) {
	l.token++
	l.selection = ref
	l.page = 1
	l.hasMore = true
	l.isLoading = false
	l.grid.ClearGrid()
	l.logger.Debug("stream instance switched",
		"stream", l.name, "instance", ref.Encode(), "token", l.token)
}

// Invalidate supersedes in-flight work without changing the selection, e.g.
// when a filter changed and page 1 must be re-issued.
func (l *Listing) Invalidate() {
	l.token++
	l.page = 1
	l.hasMore = true
	l.isLoading = false
	l.grid.ClearGrid()
	l.logger.Debug("stream invalidated", "stream", l.name, "token", l.token)
}

// CanLoadMore reports whether a pagination trigger should issue a fetch.
func (l *Listing) CanLoadMore() bool {
	return l.hasMore && !l.isLoading
}

// Begin issues a fetch for the current page, capturing the generation token
// and selection at issue time. A re-entrant Begin while a fetch for the same
// stream+instance is in flight is refused.
func (l *Listing) Begin() (Ticket, bool) {
	if l.isLoading {
		return Ticket{}, false
	}
	l.isLoading = true
	if l.page == 1 {
		l.grid.SetLoading()
	}
	t := Ticket{Token: l.token, Instance: l.selection, Page: l.page}
	l.logger.Debug("stream fetch issued",
		"stream", l.name, "page", t.Page, "token", t.Token)
	return t, true
}

// Resolve settles a fetch issued by Begin. The first-page placeholder is
// removed and the loading flag cleared unconditionally, even for stale
// responses; a stale first page arriving after a newer request was issued
// must not leave the spinner stuck while the newer request is still pending,
// and a superseded request must never permanently block the stream.
func (l *Listing) Resolve(t Ticket, pg domain.Page, err error) Outcome {
	if t.Page == 1 {
		l.grid.ClearLoading()
	}
	l.isLoading = false

	if t.Token != l.token || t.Instance != l.selection {
		l.logger.Debug("stream response discarded",
			"stream", l.name, "page", t.Page,
			"issuedToken", t.Token, "currentToken", l.token,
			"issuedInstance", t.Instance.Encode(), "currentInstance", l.selection.Encode())
		return OutcomeDiscarded
	}

	if err != nil {
		l.logger.Error("stream fetch failed",
			"stream", l.name, "page", t.Page, "error", err)
		return OutcomeFailed
	}

	items := l.filterVisible(pg.Items)
	if t.Page == 1 {
		l.grid.RenderPage(items)
	} else {
		l.grid.AppendPage(items)
	}
	l.page = t.Page + 1

	// hasMore relies on the server flag or the raw page size, never on the
	// post-filter render count: a full server page can render fewer visible
	// cards than the page size without being end-of-results.
	if pg.HasMore != nil {
		l.hasMore = *pg.HasMore
	} else {
		l.hasMore = pg.RawCount >= l.pageSize
	}

	l.logger.Debug("stream page applied",
		"stream", l.name, "page", t.Page,
		"rendered", len(items), "raw", pg.RawCount, "hasMore", l.hasMore)
	return OutcomeApplied
}

func (l *Listing) filterVisible(items []domain.MediaCard) []domain.MediaCard {
	if l.visible == nil {
		return items
	}
	out := make([]domain.MediaCard, 0, len(items))
	for _, it := range items {
		if l.visible(it) {
			out = append(out, it)
		}
	}
	return out
}
