// Package service holds the application services between the TUI and the
// backend repositories: selection state, hidden-media sets, card status
// synchronization, request submission, and local filtering.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/requestarr/requestarr/internal/domain"
)

// persistTimeout bounds the fire-and-forget write of a selection change.
const persistTimeout = 10 * time.Second

// SelectionMirror receives a best-effort local copy of every committed
// selection, used as an offline fallback when the backend is unreachable.
type SelectionMirror interface {
	SaveDefaultInstances(defaults domain.DefaultInstances) error
	LoadDefaultInstances() (domain.DefaultInstances, bool)
}

// Selection is the single source of truth for which backend instance is
// currently selected for movies and for TV. Every view reads from here;
// mutation is funneled through the two setters. Fields are owned by the
// event-loop goroutine; only the persistence write leaves it.
type Selection struct {
	settings domain.SettingsRepository
	mirror   SelectionMirror
	logger   *slog.Logger

	movie domain.InstanceRef
	tv    domain.InstanceRef

	movieListeners []func(domain.InstanceRef)
	tvListeners    []func(domain.InstanceRef)
}

// NewSelection creates the selection service. mirror may be nil.
func NewSelection(settings domain.SettingsRepository, mirror SelectionMirror, logger *slog.Logger) *Selection {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selection{
		settings: settings,
		mirror:   mirror,
		logger:   logger,
	}
}

// Load initializes the selections from the backend, falling back to the local
// mirror when the backend cannot be reached. Listeners are not notified;
// Load runs before any dependent view exists.
func (s *Selection) Load(ctx context.Context) error {
	defaults, err := s.settings.DefaultInstances(ctx)
	if err != nil {
		if s.mirror != nil {
			if local, ok := s.mirror.LoadDefaultInstances(); ok {
				s.logger.Warn("using locally mirrored instance defaults", "error", err)
				defaults = local
				err = nil
			}
		}
		if err != nil {
			return err
		}
	}
	s.movie = domain.DecodeInstanceRef(defaults.MovieInstance, domain.AppTypeRadarr)
	s.tv = domain.DecodeInstanceRef(defaults.TVInstance, domain.AppTypeSonarr)
	return nil
}

// Movie returns the current movie instance selection.
func (s *Selection) Movie() domain.InstanceRef { return s.movie }

// TV returns the current TV instance selection.
func (s *Selection) TV() domain.InstanceRef { return s.tv }

// Instance returns the selection for the given media kind.
func (s *Selection) Instance(mediaType domain.MediaType) domain.InstanceRef {
	if mediaType == domain.MediaTypeTV {
		return s.tv
	}
	return s.movie
}

// OnMovieChange registers a dependent to be resynchronized on every movie
// selection change (listing stream, discovery carousels, pickers).
func (s *Selection) OnMovieChange(fn func(domain.InstanceRef)) {
	s.movieListeners = append(s.movieListeners, fn)
}

// OnTVChange registers a dependent for TV selection changes.
func (s *Selection) OnTVChange(fn func(domain.InstanceRef)) {
	s.tvListeners = append(s.tvListeners, fn)
}

// SetMovieInstance commits a new movie instance: the in-memory field is
// updated first and stays authoritative for the session, dependents are
// resynchronized, and the choice is persisted fire-and-forget.
func (s *Selection) SetMovieInstance(ref domain.InstanceRef) {
	if s.movie == ref {
		return
	}
	s.movie = ref
	for _, fn := range s.movieListeners {
		fn(ref)
	}
	s.persist()
}

// SetTVInstance commits a new TV instance.
func (s *Selection) SetTVInstance(ref domain.InstanceRef) {
	if s.tv == ref {
		return
	}
	s.tv = ref
	for _, fn := range s.tvListeners {
		fn(ref)
	}
	s.persist()
}

// Set commits a selection for the given media kind.
func (s *Selection) Set(mediaType domain.MediaType, ref domain.InstanceRef) {
	if mediaType == domain.MediaTypeTV {
		s.SetTVInstance(ref)
	} else {
		s.SetMovieInstance(ref)
	}
}

// persist writes the current selections to the backend without blocking the
// UI. Failure is logged and not retried; the in-memory value remains
// authoritative regardless of the outcome.
func (s *Selection) persist() {
	defaults := domain.DefaultInstances{
		MovieInstance: s.movie.Encode(),
		TVInstance:    s.tv.Encode(),
	}

	if s.mirror != nil {
		if err := s.mirror.SaveDefaultInstances(defaults); err != nil {
			s.logger.Debug("selection mirror write failed", "error", err)
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.settings.SaveDefaultInstances(ctx, defaults); err != nil {
			s.logger.Warn("failed to persist instance selection",
				"movie", defaults.MovieInstance, "tv", defaults.TVInstance, "error", err)
		}
	}()
}
