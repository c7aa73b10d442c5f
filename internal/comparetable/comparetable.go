// Package comparetable derives the side-by-side comparison view from a
// small set of listings.
package comparetable

import (
	"math"

	"github.com/nestfinder/browse-api/internal/catalog"
)

// Column is one compared listing plus its derived metrics.
type Column struct {
	Listing        catalog.Listing `json:"listing"`
	PricePerSqft   int             `json:"pricePerSqft"`
	PricePerSqftOK bool            `json:"pricePerSqftOk"`
}

// Table is the feature union and presence matrix for the compared
// listings. Features appear once each, in first-seen order across the
// columns; Has is indexed [feature][column].
type Table struct {
	Columns  []Column `json:"columns"`
	Features []string `json:"features"`
	Has      [][]bool `json:"has"`
}

// Build computes the table. Column order follows the input order, which
// is the compare list's insertion order. Duplicate feature tags within a
// listing are treated as a set.
func Build(listings []catalog.Listing) Table {
	t := Table{Columns: make([]Column, 0, len(listings))}

	sets := make([]map[string]bool, len(listings))
	seen := make(map[string]bool)
	for i, l := range listings {
		sets[i] = make(map[string]bool, len(l.Features))
		for _, feat := range l.Features {
			sets[i][feat] = true
			if !seen[feat] {
				seen[feat] = true
				t.Features = append(t.Features, feat)
			}
		}
		pps, ok := PricePerSqft(l)
		t.Columns = append(t.Columns, Column{Listing: l, PricePerSqft: pps, PricePerSqftOK: ok})
	}

	t.Has = make([][]bool, len(t.Features))
	for fi, feat := range t.Features {
		row := make([]bool, len(listings))
		for li := range listings {
			row[li] = sets[li][feat]
		}
		t.Has[fi] = row
	}
	return t
}

// PricePerSqft is the rounded price divided by area. Zero or negative
// area reports ok=false instead of a division blowup; sample data never
// hits this, but Plot records make it conceivable.
func PricePerSqft(l catalog.Listing) (int, bool) {
	if l.AreaSqft <= 0 {
		return 0, false
	}
	return int(math.Round(float64(l.Price) / l.AreaSqft)), true
}
