package service

import (
	"log/slog"

	"github.com/requestarr/requestarr/internal/domain"
)

// CardView is implemented by every component currently rendering media cards
// (listing grid, discovery carousels, search results). SyncCard updates any
// rendered card for the identity to the resolved state; components with no
// matching card ignore the call.
type CardView interface {
	SyncCard(tmdbID int64, mediaType domain.MediaType, state domain.CardState)
}

// CardSync broadcasts status changes so every visible card for a
// (tmdbID, mediaType) pair reflects the latest known backend state without a
// full reload. Views register on mount and unregister on unmount.
type CardSync struct {
	logger *slog.Logger
	views  map[string]CardView
}

// NewCardSync creates the card synchronization hub.
func NewCardSync(logger *slog.Logger) *CardSync {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardSync{
		logger: logger,
		views:  make(map[string]CardView),
	}
}

// Register adds or replaces a view under a stable name.
func (c *CardSync) Register(name string, view CardView) {
	c.views[name] = view
}

// Unregister removes a view.
func (c *CardSync) Unregister(name string) {
	delete(c.views, name)
}

// Apply resolves the status flags (in-library > requested > pending) and
// pushes the single resulting state to every registered view. Re-applying
// the same status is harmless; views derive their affordances purely from
// the state.
func (c *CardSync) Apply(tmdbID int64, mediaType domain.MediaType, status domain.CardStatus) {
	state := status.State()
	c.logger.Debug("card status sync",
		"tmdbId", tmdbID, "mediaType", mediaType, "state", state.String())
	for _, view := range c.views {
		view.SyncCard(tmdbID, mediaType, state)
	}
}
