package catalog

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Index provides fuzzy, name-keyed lookup over a loaded dataset. It is built
// once per load and never mutated afterwards.
type Index struct {
	beers []Beer
	names []string
}

// NewIndex derives the index from an already name-sorted dataset.
func NewIndex(beers []Beer) *Index {
	names := make([]string, len(beers))
	for i, b := range beers {
		names[i] = b.Name
	}
	return &Index{beers: beers, names: names}
}

// Search ranks entries whose name approximately matches the query, best match
// first. An empty query returns the full dataset in name order. Ties keep
// name order, so identical queries always yield identical results.
func (ix *Index) Search(query string) []Beer {
	if query == "" {
		return ix.beers
	}
	ranks := fuzzy.RankFindNormalizedFold(query, ix.names)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})
	out := make([]Beer, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, ix.beers[r.OriginalIndex])
	}
	return out
}
