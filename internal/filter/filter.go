// Package filter implements the listing filter/sort pipeline.
//
// The pipeline is a pure function over the full listing collection: it copies
// the input, drops everything that fails a supplied criterion, and stable-sorts
// the survivors. The input slice is never mutated, and the whole thing is
// recomputed from scratch whenever any criterion or the sort key changes —
// collections are small enough that incremental re-filtering would be
// complexity for nothing.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sakif/marketplace/internal/model"
)

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortMostViewed SortKey = "most-viewed"
)

// Criteria are AND-combined filter predicates. An empty field means "don't
// filter on this". Price bounds are strings straight from the form/query;
// a bound that doesn't parse as a number is ignored rather than rejected.
type Criteria struct {
	Category string
	MinPrice string
	MaxPrice string
	Location string
	Search   string
}

// Apply returns the listings satisfying every non-empty criterion, ordered by
// the sort key. With zero criteria and an unknown sort key the result is the
// input collection in its original order (as a fresh slice).
func Apply(listings []model.Listing, c Criteria, key SortKey) []model.Listing {
	result := make([]model.Listing, 0, len(listings))

	minPrice, hasMin := parseBound(c.MinPrice)
	maxPrice, hasMax := parseBound(c.MaxPrice)
	location := strings.ToLower(c.Location)
	search := strings.ToLower(c.Search)

	for _, l := range listings {
		if c.Category != "" && l.Category != c.Category {
			continue
		}
		if hasMin && l.Price < minPrice {
			continue
		}
		if hasMax && l.Price > maxPrice {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(l.Location), location) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		result = append(result, l)
	}

	sortListings(result, key)
	return result
}

// parseBound interprets a price bound from the form. Empty or non-numeric
// input means the bound is not applied.
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// sortListings orders the slice in place with a STABLE sort — ties keep the
// relative order they had after filtering. An unknown key sorts nothing.
func sortListings(listings []model.Listing, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortMostViewed:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Views > listings[j].Views
		})
	}
}

// Featured returns up to limit listings carrying the featured flag, in
// collection order. Used by the home page rails.
func Featured(listings []model.Listing, limit int) []model.Listing {
	return take(listings, limit, func(l model.Listing) bool { return l.IsFeatured })
}

// Recent returns the first limit listings in collection order. New listings
// are prepended on creation, so collection order is newest-first.
func Recent(listings []model.Listing, limit int) []model.Listing {
	return take(listings, limit, func(model.Listing) bool { return true })
}

// ByCategory returns up to limit listings in the given category, in
// collection order.
func ByCategory(listings []model.Listing, category string, limit int) []model.Listing {
	return take(listings, limit, func(l model.Listing) bool { return l.Category == category })
}

func take(listings []model.Listing, limit int, keep func(model.Listing) bool) []model.Listing {
	result := []model.Listing{}
	for _, l := range listings {
		if len(result) == limit {
			break
		}
		if keep(l) {
			result = append(result, l)
		}
	}
	return result
}
