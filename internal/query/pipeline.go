package query

import (
	"sort"

	"github.com/nestfinder/browse-api/internal/canon"
	"github.com/nestfinder/browse-api/internal/catalog"
)

// Apply filters and sorts the collection. Pure: the input slice is not
// modified, and the same inputs always produce the same output.
func Apply(listings []catalog.Listing, f FilterState) []catalog.Listing {
	out := make([]catalog.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, f) {
			out = append(out, l)
		}
	}
	sortListings(out, f.SortBy)
	return out
}

func matches(l catalog.Listing, f FilterState) bool {
	if f.Keyword != "" &&
		!canon.Contains(l.Title, f.Keyword) &&
		!canon.Contains(l.Address, f.Keyword) &&
		!canon.Contains(l.City, f.Keyword) {
		return false
	}
	if f.cityConstrained() && l.City != f.City {
		return false
	}
	if f.typeConstrained() && string(l.Type) != f.Type {
		return false
	}
	// Price window is always applied; bounds are inclusive.
	if l.Price < f.MinPrice || l.Price > f.MaxPrice {
		return false
	}
	if f.MinBeds > 0 && l.Beds < f.MinBeds {
		return false
	}
	if f.MinArea > 0 && l.AreaSqft < f.MinArea {
		return false
	}
	return true
}

// sortListings applies exactly one comparator. Stable, so listings with
// equal keys keep their relative input order.
func sortListings(ls []catalog.Listing, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].Price < ls[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].Price > ls[j].Price })
	case SortArea:
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].AreaSqft > ls[j].AreaSqft })
	default: // SortNewest
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].CreatedAt.After(ls[j].CreatedAt.Time) })
	}
}

// Paginate slices out the 1-based page. Out-of-range pages yield an empty
// slice, never an error.
func Paginate(ls []catalog.Listing, page int) []catalog.Listing {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(ls) {
		return []catalog.Listing{}
	}
	end := start + PageSize
	if end > len(ls) {
		end = len(ls)
	}
	return ls[start:end]
}

// TotalPages for a result of n listings.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}
