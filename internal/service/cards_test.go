package service

import (
	"context"
	"errors"
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

// fakeCardView records the last synced state per media key.
type fakeCardView struct {
	states map[string]domain.CardState
	calls  int
}

func newFakeCardView() *fakeCardView {
	return &fakeCardView{states: make(map[string]domain.CardState)}
}

func (v *fakeCardView) SyncCard(tmdbID int64, mediaType domain.MediaType, state domain.CardState) {
	v.states[domain.MediaKey(tmdbID, mediaType)] = state
	v.calls++
}

func TestApplyBroadcastsResolvedState(t *testing.T) {
	sync := NewCardSync(nil)
	grid := newFakeCardView()
	carousel := newFakeCardView()
	sync.Register("grid", grid)
	sync.Register("carousel", carousel)

	// inLibrary wins over requested.
	sync.Apply(550, domain.MediaTypeMovie, domain.CardStatus{InLibrary: true, Requested: true})

	for name, v := range map[string]*fakeCardView{"grid": grid, "carousel": carousel} {
		if got := v.states["550:movie"]; got != domain.CardComplete {
			t.Fatalf("%s state = %v, want complete", name, got)
		}
	}
}

func TestUnregisteredViewStopsReceiving(t *testing.T) {
	sync := NewCardSync(nil)
	grid := newFakeCardView()
	sync.Register("grid", grid)
	sync.Unregister("grid")

	sync.Apply(550, domain.MediaTypeMovie, domain.CardStatus{Pending: true})
	if grid.calls != 0 {
		t.Fatal("unregistered view still received sync")
	}
}

// fakeRequestRepo implements domain.RequestRepository.
type fakeRequestRepo struct {
	status  domain.CardStatus
	err     error
	deleted []string
	folders []domain.RootFolder
}

func (f *fakeRequestRepo) SubmitRequest(ctx context.Context, req domain.MediaRequest) (domain.CardStatus, error) {
	return f.status, f.err
}

func (f *fakeRequestRepo) DeleteRequest(ctx context.Context, tmdbID int64, mediaType domain.MediaType) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, domain.MediaKey(tmdbID, mediaType))
	return nil
}

func (f *fakeRequestRepo) RootFolders(ctx context.Context, ref domain.InstanceRef) ([]domain.RootFolder, error) {
	return f.folders, f.err
}

func (f *fakeRequestRepo) QualityProfiles(ctx context.Context, ref domain.InstanceRef) ([]domain.QualityProfile, error) {
	return nil, f.err
}

func TestSubmitReturnsBackendStatus(t *testing.T) {
	repo := &fakeRequestRepo{status: domain.CardStatus{Pending: true}}

	svc := NewRequests(repo, nil)
	status, err := svc.Submit(context.Background(), domain.MediaRequest{
		TmdbID: 550, MediaType: domain.MediaTypeMovie,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if status.State() != domain.CardPending {
		t.Fatalf("state = %v, want pending", status.State())
	}
}

func TestSubmitFailureReturnsZeroStatus(t *testing.T) {
	repo := &fakeRequestRepo{err: errors.New("boom")}

	svc := NewRequests(repo, nil)
	status, err := svc.Submit(context.Background(), domain.MediaRequest{TmdbID: 550, MediaType: domain.MediaTypeMovie})
	if err == nil {
		t.Fatal("expected error")
	}
	if status != (domain.CardStatus{}) {
		t.Fatalf("status = %+v on failure, want zero", status)
	}
}

func TestDeleteForwardsToBackend(t *testing.T) {
	repo := &fakeRequestRepo{}

	svc := NewRequests(repo, nil)
	if err := svc.Delete(context.Background(), 550, domain.MediaTypeMovie); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "550:movie" {
		t.Fatalf("deleted = %v, want [550:movie]", repo.deleted)
	}
}

func TestRootFoldersDefaultFirst(t *testing.T) {
	repo := &fakeRequestRepo{folders: []domain.RootFolder{
		{Path: "/b"},
		{Path: "/a", IsDefault: true},
		{Path: "/c"},
	}}
	svc := NewRequests(repo, nil)

	folders, err := svc.RootFolders(context.Background(), domain.InstanceRef{AppType: domain.AppTypeRadarr, Name: "x"})
	if err != nil {
		t.Fatalf("RootFolders: %v", err)
	}
	if folders[0].Path != "/a" {
		t.Fatalf("first folder = %s, want the default", folders[0].Path)
	}
	if folders[1].Path != "/b" || folders[2].Path != "/c" {
		t.Fatal("non-default folder order must be preserved")
	}
}
