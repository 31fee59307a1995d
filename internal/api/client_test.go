package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

func testRef() domain.InstanceRef {
	return domain.InstanceRef{AppType: domain.AppTypeRadarr, Name: "main"}
}

func TestDiscoverParsesPage(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/discover/movies" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Error("missing api key header")
		}
		gotQuery = map[string]string{
			"page":          r.URL.Query().Get("page"),
			"app_type":      r.URL.Query().Get("app_type"),
			"instance_name": r.URL.Query().Get("instance_name"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"tmdb_id": 550, "media_type": "movie", "title": "Fight Club", "year": 1999, "in_library": true},
				{"tmdb_id": 680, "title": "Pulp Fiction", "year": 1994, "suggested_instance": "movie_hunt:4k"}
			],
			"has_more": true
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	page, err := c.Discover(context.Background(), domain.MediaTypeMovie, testRef(), 2)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if gotQuery["page"] != "2" || gotQuery["app_type"] != "radarr" || gotQuery["instance_name"] != "main" {
		t.Fatalf("unexpected query params: %+v", gotQuery)
	}
	if page.RawCount != 2 || len(page.Items) != 2 {
		t.Fatalf("page raw=%d items=%d, want 2/2", page.RawCount, len(page.Items))
	}
	if page.HasMore == nil || !*page.HasMore {
		t.Fatal("has_more flag not carried through")
	}
	if !page.Items[0].InLibrary {
		t.Fatal("in_library flag lost in mapping")
	}
	// Missing media_type falls back to the endpoint's kind.
	if page.Items[1].MediaType != domain.MediaTypeMovie {
		t.Fatalf("fallback media type = %s", page.Items[1].MediaType)
	}
	want := domain.InstanceRef{AppType: domain.AppTypeMovieHunt, Name: "4k"}
	if page.Items[1].SuggestedInstance != want {
		t.Fatalf("suggested instance = %+v", page.Items[1].SuggestedInstance)
	}
}

func TestDiscoverOmittedHasMore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	page, err := c.Discover(context.Background(), domain.MediaTypeTV, testRef(), 1)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if page.HasMore != nil {
		t.Fatal("omitted has_more must stay nil so callers use the size heuristic")
	}
}

func TestSubmitRequestEnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "no root folder configured"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	_, err := c.SubmitRequest(context.Background(), domain.MediaRequest{
		TmdbID: 550, MediaType: domain.MediaTypeMovie, Instance: testRef(),
	})

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Message != "no root folder configured" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong", nil)
	_, err := c.Instances(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRootFoldersParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"root_folders": [
				{"path": "/movies", "freeSpace": 107374182400, "is_default": true},
				{"path": "/movies-4k", "freeSpace": 53687091200}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	folders, err := c.RootFolders(context.Background(), testRef())
	if err != nil {
		t.Fatalf("RootFolders: %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("got %d folders", len(folders))
	}
	if !folders[0].IsDefault || folders[0].Path != "/movies" {
		t.Fatalf("first folder = %+v", folders[0])
	}
	if folders[0].FormattedFreeSpace() != "100.0 GB" {
		t.Fatalf("free space formatted as %q", folders[0].FormattedFreeSpace())
	}
}

func TestServerOfflineSentinel(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "secret", nil)
	_, err := c.Discover(context.Background(), domain.MediaTypeMovie, testRef(), 1)
	if !errors.Is(err, domain.ErrServerOffline) {
		t.Fatalf("err = %v, want ErrServerOffline", err)
	}
}

func TestDefaultInstancesRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"defaults": {"movie_instance": "radarr:main", "tv_instance": "tv_hunt:shows"}}`))
		case http.MethodPost:
			w.Write([]byte(`{"success": true}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	defaults, err := c.DefaultInstances(context.Background())
	if err != nil {
		t.Fatalf("DefaultInstances: %v", err)
	}
	if defaults.MovieInstance != "radarr:main" || defaults.TVInstance != "tv_hunt:shows" {
		t.Fatalf("defaults = %+v", defaults)
	}
	if err := c.SaveDefaultInstances(context.Background(), defaults); err != nil {
		t.Fatalf("SaveDefaultInstances: %v", err)
	}
}
