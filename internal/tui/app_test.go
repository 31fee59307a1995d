package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/service"
	"github.com/requestarr/requestarr/internal/store"
)

// stubDiscovery satisfies domain.DiscoveryRepository. The model tests never
// execute fetch commands, so every method returns empty results.
type stubDiscovery struct{}

func (stubDiscovery) Discover(ctx context.Context, mediaType domain.MediaType, ref domain.InstanceRef, page int) (domain.Page, error) {
	return domain.Page{}, nil
}

func (stubDiscovery) Search(ctx context.Context, query string, mediaType domain.MediaType, ref domain.InstanceRef) ([]domain.MediaCard, error) {
	return nil, nil
}

func (stubDiscovery) Details(ctx context.Context, mediaType domain.MediaType, tmdbID int64) (*domain.MediaCard, error) {
	return nil, nil
}

func (stubDiscovery) Recommendations(ctx context.Context, mediaType domain.MediaType, ref domain.InstanceRef, page int) (domain.Page, error) {
	return domain.Page{}, nil
}

// stubSettings satisfies domain.SettingsRepository with fixed defaults.
type stubSettings struct {
	defaults domain.DefaultInstances
}

func (s *stubSettings) Instances(ctx context.Context) ([]domain.Instance, error) { return nil, nil }

func (s *stubSettings) DefaultInstances(ctx context.Context) (domain.DefaultInstances, error) {
	return s.defaults, nil
}

func (s *stubSettings) SaveDefaultInstances(ctx context.Context, defaults domain.DefaultInstances) error {
	return nil
}

func (s *stubSettings) HiddenMedia(ctx context.Context) ([]string, error)     { return nil, nil }
func (s *stubSettings) GlobalBlacklist(ctx context.Context) ([]string, error) { return nil, nil }

func (s *stubSettings) Unhide(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return nil
}

func (s *stubSettings) Unblacklist(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return nil
}

// stubRequestRepo satisfies domain.RequestRepository.
type stubRequestRepo struct{}

func (stubRequestRepo) SubmitRequest(ctx context.Context, req domain.MediaRequest) (domain.CardStatus, error) {
	return domain.CardStatus{}, nil
}

func (stubRequestRepo) DeleteRequest(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	return nil
}

func (stubRequestRepo) RootFolders(ctx context.Context, ref domain.InstanceRef) ([]domain.RootFolder, error) {
	return nil, nil
}

func (stubRequestRepo) QualityProfiles(ctx context.Context, ref domain.InstanceRef) ([]domain.QualityProfile, error) {
	return nil, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	settings := &stubSettings{defaults: domain.DefaultInstances{
		MovieInstance: "radarr:main",
		TVInstance:    "sonarr:main",
	}}
	selection := service.NewSelection(settings, nil, nil)
	if err := selection.Load(context.Background()); err != nil {
		t.Fatalf("selection load: %v", err)
	}
	cache, err := store.Open("", "")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	return NewModel(Deps{
		Discovery: stubDiscovery{},
		Requests:  service.NewRequests(stubRequestRepo{}, nil),
		Selection: selection,
		Hidden:    service.NewHiddenMedia(settings, nil),
		Settings:  settings,
		Cards:     service.NewCardSync(nil),
		Cache:     cache,
		PageSize:  20,
		Columns:   4,
	})
}

// Card state syncs run inside Update, on the goroutine that owns the card
// slices; the fetch command only reports the backend's status flags.
func TestRequestSubmittedSyncsCardsInUpdate(t *testing.T) {
	m := newTestModel(t)
	m.MovieGrid.RenderPage([]domain.MediaCard{
		{TmdbID: 550, MediaType: domain.MediaTypeMovie, Title: "Fight Club"},
	})

	updated, _ := m.Update(RequestSubmittedMsg{
		TmdbID:    550,
		MediaType: domain.MediaTypeMovie,
		Title:     "Fight Club",
		Status:    domain.CardStatus{Pending: true},
	})
	got := updated.(Model)

	if state := got.MovieGrid.Cards()[0].State(); state != domain.CardPending {
		t.Fatalf("card state = %v after submit, want pending", state)
	}
	if got.StatusText != "Requested Fight Club" || got.StatusIsErr {
		t.Fatalf("status = %q (err=%v)", got.StatusText, got.StatusIsErr)
	}
}

func TestRequestSubmitFailureLeavesCardsUntouched(t *testing.T) {
	m := newTestModel(t)
	m.MovieGrid.RenderPage([]domain.MediaCard{
		{TmdbID: 550, MediaType: domain.MediaTypeMovie, Title: "Fight Club"},
	})

	updated, _ := m.Update(RequestSubmittedMsg{
		TmdbID:    550,
		MediaType: domain.MediaTypeMovie,
		Title:     "Fight Club",
		Err:       errors.New("boom"),
	})
	got := updated.(Model)

	if state := got.MovieGrid.Cards()[0].State(); state != domain.CardAvailable {
		t.Fatalf("card state = %v after failed submit, want available", state)
	}
	if !got.StatusIsErr {
		t.Fatal("failed submit must surface an error status")
	}
}

func TestRequestDeletedReturnsCardsToAvailable(t *testing.T) {
	m := newTestModel(t)
	m.MovieGrid.RenderPage([]domain.MediaCard{
		{TmdbID: 550, MediaType: domain.MediaTypeMovie, Title: "Fight Club", Pending: true},
	})

	updated, _ := m.Update(RequestDeletedMsg{
		TmdbID:    550,
		MediaType: domain.MediaTypeMovie,
	})
	got := updated.(Model)

	if state := got.MovieGrid.Cards()[0].State(); state != domain.CardAvailable {
		t.Fatalf("card state = %v after delete, want available", state)
	}
}

// Binding the streams rewinds them to the selected instance and then paints
// the cached first page; the paint must survive the rebinding's grid clear.
func TestBindStreamsKeepsCachedFirstPage(t *testing.T) {
	m := newTestModel(t)
	ref := domain.InstanceRef{AppType: domain.AppTypeRadarr, Name: "main"}
	err := m.Cache.SavePage(streamMovies, ref, 1, domain.Page{
		Items:    []domain.MediaCard{{TmdbID: 550, MediaType: domain.MediaTypeMovie, Title: "Fight Club"}},
		RawCount: 1,
	})
	if err != nil {
		t.Fatalf("save page: %v", err)
	}

	cmds := m.bindStreams()

	if m.MovieGrid.Len() != 1 {
		t.Fatalf("grid has %d cards after bind, want the cached page", m.MovieGrid.Len())
	}
	if !m.MovieStream.Loading() {
		t.Fatal("bind must still issue a fresh fetch")
	}
	if len(cmds) == 0 {
		t.Fatal("bind returned no fetch commands")
	}
}

// Refreshing a view drops its cached pages so a stale cache cannot repaint
// items the refresh removed.
func TestRefreshDropsCachedPages(t *testing.T) {
	m := newTestModel(t)
	ref := domain.InstanceRef{AppType: domain.AppTypeRadarr, Name: "main"}
	m.MovieStream.SetInstance(ref)
	err := m.Cache.SavePage(streamMovies, ref, 1, domain.Page{
		Items:    []domain.MediaCard{{TmdbID: 550, MediaType: domain.MediaTypeMovie}},
		RawCount: 1,
	})
	if err != nil {
		t.Fatalf("save page: %v", err)
	}
	m.Tab = ViewMovies

	if _, cmd := m.refreshActiveView(); cmd == nil {
		t.Fatal("refresh issued no commands")
	}

	if _, ok := m.Cache.LoadPage(streamMovies, ref, 1); ok {
		t.Fatal("cached page survived refresh")
	}
}
