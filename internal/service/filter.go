package service

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/requestarr/requestarr/internal/domain"
)

// FilterResult is one local filter match with highlight metadata.
type FilterResult struct {
	Card           domain.MediaCard
	MatchedIndexes []int
	Score          int
}

// filterIndex implements fuzzy.Source over the rendered cards.
type filterIndex struct {
	cards       []domain.MediaCard
	lowerTitles []string
}

func (idx *filterIndex) String(i int) string { return idx.lowerTitles[i] }
func (idx *filterIndex) Len() int            { return len(idx.cards) }

// Filter provides instant local filtering over whatever cards are currently
// loaded, without touching the network.
type Filter struct {
	index *filterIndex
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return &Filter{index: &filterIndex{}}
}

// Index replaces the filterable card set.
func (f *Filter) Index(cards []domain.MediaCard) {
	lower := make([]string, len(cards))
	for i, c := range cards {
		lower[i] = strings.ToLower(c.Title)
	}
	f.index = &filterIndex{cards: cards, lowerTitles: lower}
}

// Match returns fuzzy matches for the query, best first.
func (f *Filter) Match(query string) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, f.index)
	results := make([]FilterResult, len(matches))
	for i, m := range matches {
		results[i] = FilterResult{
			Card:           f.index.cards[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// RankSearchResults orders server search results by fuzzy closeness to the
// query, keeping the server order among equally ranked titles.
func RankSearchResults(cards []domain.MediaCard, query string) []domain.MediaCard {
	query = strings.TrimSpace(query)
	if query == "" || len(cards) < 2 {
		return cards
	}

	type ranked struct {
		card domain.MediaCard
		rank int
	}
	out := make([]ranked, len(cards))
	for i, c := range cards {
		rank := lfuzzy.RankMatchNormalizedFold(query, c.Title)
		if rank < 0 {
			// Non-matching titles sink below every match.
			rank = 1 << 20
		}
		out[i] = ranked{card: c, rank: rank}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank < out[j].rank })

	result := make([]domain.MediaCard, len(out))
	for i, r := range out {
		result[i] = r.card
	}
	return result
}
