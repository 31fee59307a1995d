package tui

import (
	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/stream"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg delivers one fetched page for a paginated listing. The ticket
// is the snapshot captured at issue time; the listing decides whether the
// response still applies.
type PageLoadedMsg struct {
	Stream string
	Ticket stream.Ticket
	Page   domain.Page
	Err    error
}

// CarouselPageMsg delivers one fetched page for a discover carousel.
type CarouselPageMsg struct {
	Carousel string
	Ticket   stream.Ticket
	Page     domain.Page
	Err      error
}

// SearchDebounceMsg fires when the search input has been idle long enough to
// issue a query. Seq identifies the keystroke generation it belongs to.
type SearchDebounceMsg struct {
	Seq uint64
}

// SearchResultsMsg delivers search results for a query generation.
type SearchResultsMsg struct {
	Seq     uint64
	Query   string
	Results []domain.MediaCard
	Err     error
}

// InstancesLoadedMsg delivers the configured backend instances.
type InstancesLoadedMsg struct {
	Instances []domain.Instance
	Err       error
}

// SelectionLoadedMsg signals that the persisted default instances are loaded.
type SelectionLoadedMsg struct {
	Err error
}

// HiddenLoadedMsg signals that the hidden/blacklist sets were refreshed.
type HiddenLoadedMsg struct {
	Err error
}

// RequestOptionsMsg delivers root folders and quality profiles for the
// request modal.
type RequestOptionsMsg struct {
	Instance domain.InstanceRef
	Folders  []domain.RootFolder
	Profiles []domain.QualityProfile
	Err      error
}

// RequestSubmittedMsg signals the outcome of a request submission. The
// status flags are applied to rendered cards by the Update handler, on the
// event-loop goroutine.
type RequestSubmittedMsg struct {
	TmdbID    int64
	MediaType domain.MediaType
	Title     string
	Status    domain.CardStatus
	Err       error
}

// RequestDeletedMsg signals the outcome of a request deletion.
type RequestDeletedMsg struct {
	TmdbID    int64
	MediaType domain.MediaType
	Err       error
}

// UnhideDoneMsg signals that an item was removed from the hidden set.
type UnhideDoneMsg struct {
	TmdbID    int64
	MediaType domain.MediaType
	Err       error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}
