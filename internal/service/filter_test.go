package service

import (
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

func cardTitled(id int64, title string) domain.MediaCard {
	return domain.MediaCard{TmdbID: id, MediaType: domain.MediaTypeMovie, Title: title}
}

func TestFilterMatch(t *testing.T) {
	f := NewFilter()
	f.Index([]domain.MediaCard{
		cardTitled(1, "The Matrix"),
		cardTitled(2, "Matrix Reloaded"),
		cardTitled(3, "Inception"),
	})

	results := f.Match("matrix")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Card.TmdbID == 3 {
			t.Fatal("non-matching card returned")
		}
	}
}

func TestFilterEmptyQuery(t *testing.T) {
	f := NewFilter()
	f.Index([]domain.MediaCard{cardTitled(1, "Alien")})
	if got := f.Match("  "); got != nil {
		t.Fatalf("blank query returned %d results", len(got))
	}
}

func TestRankSearchResults(t *testing.T) {
	cards := []domain.MediaCard{
		cardTitled(1, "Aliens vs Predator"),
		cardTitled(2, "Alien"),
		cardTitled(3, "Unrelated Title"),
	}

	ranked := RankSearchResults(cards, "Alien")
	if ranked[0].TmdbID != 2 {
		t.Fatalf("best match = %q, want exact title first", ranked[0].Title)
	}
	if ranked[len(ranked)-1].TmdbID != 3 {
		t.Fatal("non-matching title should sink to the bottom")
	}
}

func TestRankSearchResultsNoQuery(t *testing.T) {
	cards := []domain.MediaCard{cardTitled(1, "B"), cardTitled(2, "A")}
	ranked := RankSearchResults(cards, "")
	if ranked[0].TmdbID != 1 {
		t.Fatal("empty query must preserve server order")
	}
}
