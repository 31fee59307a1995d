package components

import (
	"testing"

	"github.com/requestarr/requestarr/internal/domain"
)

func gridCards(n int) []domain.MediaCard {
	cards := make([]domain.MediaCard, n)
	for i := range cards {
		cards[i] = domain.MediaCard{TmdbID: int64(i + 1), MediaType: domain.MediaTypeMovie, Title: "Movie"}
	}
	return cards
}

func countAffordance(affs []Affordance, want Affordance) int {
	n := 0
	for _, a := range affs {
		if a == want {
			n++
		}
	}
	return n
}

func TestSyncCardIsIdempotent(t *testing.T) {
	g := NewGrid("movies", 4)
	g.RenderPage(gridCards(4))

	// A repeated sync must not stack affordances or flip state.
	g.SyncCard(2, domain.MediaTypeMovie, domain.CardRequested)
	g.SyncCard(2, domain.MediaTypeMovie, domain.CardRequested)

	card := g.Cards()[1]
	if card.State() != domain.CardRequested {
		t.Fatalf("state = %v, want requested", card.State())
	}
	affs := CardAffordances(card.State())
	if n := countAffordance(affs, AffordanceDelete); n != 1 {
		t.Fatalf("delete affordances = %d, want exactly 1", n)
	}
	if n := countAffordance(affs, AffordanceRequest); n != 0 {
		t.Fatalf("owned card still offers request (%d)", n)
	}
}

func TestSyncCardRoundTrip(t *testing.T) {
	g := NewGrid("movies", 4)
	g.RenderPage(gridCards(1))

	g.SyncCard(1, domain.MediaTypeMovie, domain.CardPending)
	if got := g.Cards()[0].State(); got != domain.CardPending {
		t.Fatalf("state = %v, want pending", got)
	}

	g.SyncCard(1, domain.MediaTypeMovie, domain.CardAvailable)
	card := g.Cards()[0]
	if got := card.State(); got != domain.CardAvailable {
		t.Fatalf("state = %v, want available", got)
	}
	affs := CardAffordances(card.State())
	if countAffordance(affs, AffordanceRequest) != 1 {
		t.Fatal("available card must offer request again")
	}
}

func TestSyncCardIgnoresOtherMediaType(t *testing.T) {
	g := NewGrid("mixed", 4)
	g.RenderPage([]domain.MediaCard{
		{TmdbID: 100, MediaType: domain.MediaTypeMovie},
		{TmdbID: 100, MediaType: domain.MediaTypeTV},
	})

	g.SyncCard(100, domain.MediaTypeMovie, domain.CardComplete)
	if g.Cards()[1].State() != domain.CardAvailable {
		t.Fatal("tv card with same id was synced")
	}
}

func TestRenderPageResetsCursor(t *testing.T) {
	g := NewGrid("movies", 2)
	g.RenderPage(gridCards(6))
	g.MoveDown()
	g.MoveDown()

	g.RenderPage(gridCards(4))
	card, ok := g.Selected()
	if !ok || card.TmdbID != 1 {
		t.Fatalf("cursor not reset, selected %+v", card)
	}
}

func TestNearEndTriggersOnLastRows(t *testing.T) {
	g := NewGrid("movies", 2)
	g.RenderPage(gridCards(8))

	if g.NearEnd() {
		t.Fatal("cursor at top should not be near end")
	}
	g.MoveDown()
	g.MoveDown()
	if !g.NearEnd() {
		t.Fatal("cursor in second-to-last row should be near end")
	}
}
