package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/service"
	"github.com/requestarr/requestarr/internal/stream"
)

// Command factories for async operations

const (
	fetchTimeout     = 30 * time.Second
	recommendTimeout = 15 * time.Second // recommendations are decorative, fail fast
	searchTimeout    = 30 * time.Second
	searchDebounce   = 300 * time.Millisecond
	statusClearDelay = 4 * time.Second
	spinnerTickRate  = 100 * time.Millisecond
)

// LoadPageCmd fetches one discovery page for a listing stream. The ticket is
// echoed back so the listing can reject the response if it went stale.
func LoadPageCmd(name string, repo domain.DiscoveryRepository, mediaType domain.MediaType, t stream.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		pg, err := repo.Discover(ctx, mediaType, t.Instance, t.Page)
		return PageLoadedMsg{Stream: name, Ticket: t, Page: pg, Err: err}
	}
}

// LoadCarouselPageCmd fetches one discovery page for a carousel row.
func LoadCarouselPageCmd(name string, repo domain.DiscoveryRepository, mediaType domain.MediaType, t stream.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		pg, err := repo.Discover(ctx, mediaType, t.Instance, t.Page)
		return CarouselPageMsg{Carousel: name, Ticket: t, Page: pg, Err: err}
	}
}

// LoadRecommendationsCmd fetches one smart-recommendation page with a shorter
// timeout than regular discovery.
func LoadRecommendationsCmd(name string, repo domain.DiscoveryRepository, mediaType domain.MediaType, t stream.Ticket) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recommendTimeout)
		defer cancel()

		pg, err := repo.Recommendations(ctx, mediaType, t.Instance, t.Page)
		return CarouselPageMsg{Carousel: name, Ticket: t, Page: pg, Err: err}
	}
}

// DebounceSearchCmd waits out the typing pause before a query is issued.
func DebounceSearchCmd(seq uint64) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// SearchCmd runs a free-text search for one query generation.
func SearchCmd(repo domain.DiscoveryRepository, query string, mediaType domain.MediaType, ref domain.InstanceRef, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		results, err := repo.Search(ctx, query, mediaType, ref)
		return SearchResultsMsg{Seq: seq, Query: query, Results: results, Err: err}
	}
}

// LoadInstancesCmd loads the configured backend instances.
func LoadInstancesCmd(settings domain.SettingsRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		instances, err := settings.Instances(ctx)
		return InstancesLoadedMsg{Instances: instances, Err: err}
	}
}

// LoadSelectionCmd loads the persisted default instance selection.
func LoadSelectionCmd(sel *service.Selection) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return SelectionLoadedMsg{Err: sel.Load(ctx)}
	}
}

// RefreshHiddenCmd refreshes the hidden and blacklist sets.
func RefreshHiddenCmd(hidden *service.HiddenMedia) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return HiddenLoadedMsg{Err: hidden.Refresh(ctx)}
	}
}

// LoadRequestOptionsCmd loads root folders and quality profiles for the
// request modal.
func LoadRequestOptionsCmd(requests *service.Requests, ref domain.InstanceRef) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		folders, err := requests.RootFolders(ctx, ref)
		if err != nil {
			return RequestOptionsMsg{Instance: ref, Err: err}
		}
		profiles, err := requests.QualityProfiles(ctx, ref)
		if err != nil {
			return RequestOptionsMsg{Instance: ref, Err: err}
		}
		return RequestOptionsMsg{Instance: ref, Folders: folders, Profiles: profiles}
	}
}

// SubmitRequestCmd submits a media request.
func SubmitRequestCmd(requests *service.Requests, req domain.MediaRequest, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		status, err := requests.Submit(ctx, req)
		return RequestSubmittedMsg{
			TmdbID:    req.TmdbID,
			MediaType: req.MediaType,
			Title:     title,
			Status:    status,
			Err:       err,
		}
	}
}

// DeleteRequestCmd deletes a pending request.
func DeleteRequestCmd(requests *service.Requests, tmdbID int64, mediaType domain.MediaType) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		err := requests.Delete(ctx, tmdbID, mediaType)
		return RequestDeletedMsg{TmdbID: tmdbID, MediaType: mediaType, Err: err}
	}
}

// UnhideCmd removes an item from the hidden set.
func UnhideCmd(hidden *service.HiddenMedia, tmdbID int64, mediaType domain.MediaType) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		err := hidden.Unhide(ctx, tmdbID, mediaType)
		return UnhideDoneMsg{TmdbID: tmdbID, MediaType: mediaType, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd() tea.Cmd {
	return tea.Tick(spinnerTickRate, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
