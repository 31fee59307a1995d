package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/requestarr/requestarr/internal/domain"
)

// keySet is an O(1) membership set of "tmdbID:mediaType" keys.
type keySet struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func newKeySet() *keySet {
	return &keySet{keys: make(map[string]struct{})}
}

func (s *keySet) replace(keys []string) {
	next := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		next[k] = struct{}{}
	}
	s.mu.Lock()
	s.keys = next
	s.mu.Unlock()
}

func (s *keySet) contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok
}

func (s *keySet) remove(key string) {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
}

func (s *keySet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// HiddenMedia maintains the process-wide hidden-media and global-blacklist
// sets used to filter listing results client-side. Sets are loaded on view
// activation and invalidated when the relevant settings view is re-entered.
type HiddenMedia struct {
	settings domain.SettingsRepository
	logger   *slog.Logger

	hidden    *keySet
	blacklist *keySet
	loaded    bool
}

// NewHiddenMedia creates the hidden/blacklist membership service.
func NewHiddenMedia(settings domain.SettingsRepository, logger *slog.Logger) *HiddenMedia {
	if logger == nil {
		logger = slog.Default()
	}
	return &HiddenMedia{
		settings:  settings,
		logger:    logger,
		hidden:    newKeySet(),
		blacklist: newKeySet(),
	}
}

// Refresh loads both sets from the backend. A failure keeps the previous
// sets; filtering degrades to whatever was last known.
func (h *HiddenMedia) Refresh(ctx context.Context) error {
	hiddenKeys, err := h.settings.HiddenMedia(ctx)
	if err != nil {
		return err
	}
	blacklistKeys, err := h.settings.GlobalBlacklist(ctx)
	if err != nil {
		return err
	}
	h.hidden.replace(hiddenKeys)
	h.blacklist.replace(blacklistKeys)
	h.loaded = true
	h.logger.Debug("hidden sets refreshed",
		"hidden", h.hidden.len(), "blacklisted", h.blacklist.len())
	return nil
}

// Loaded reports whether a refresh has succeeded since the last invalidation.
func (h *HiddenMedia) Loaded() bool { return h.loaded }

// Invalidate marks the sets stale so the next view activation re-fetches.
func (h *HiddenMedia) Invalidate() { h.loaded = false }

// Visible reports whether a card passes both membership filters. Used as the
// stream visibility function; rejected items are not rendered but still count
// toward the server page size.
func (h *HiddenMedia) Visible(card domain.MediaCard) bool {
	key := card.Key()
	return !h.hidden.contains(key) && !h.blacklist.contains(key)
}

// IsHidden reports membership in the hidden set.
func (h *HiddenMedia) IsHidden(tmdbID int64, mediaType domain.MediaType) bool {
	return h.hidden.contains(domain.MediaKey(tmdbID, mediaType))
}

// Unhide removes an item from the hidden set on the backend and locally.
func (h *HiddenMedia) Unhide(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	if err := h.settings.Unhide(ctx, tmdbID, mediaType); err != nil {
		return err
	}
	h.hidden.remove(domain.MediaKey(tmdbID, mediaType))
	return nil
}

// Unblacklist removes an item from the global blacklist on the backend and
// locally.
func (h *HiddenMedia) Unblacklist(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	if err := h.settings.Unblacklist(ctx, tmdbID, mediaType); err != nil {
		return err
	}
	h.blacklist.remove(domain.MediaKey(tmdbID, mediaType))
	return nil
}
