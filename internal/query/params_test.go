package query

import (
	"net/url"
	"testing"
)

func TestFromValues(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		check func(t *testing.T, f FilterState)
	}{
		{"empty gives defaults", "", func(t *testing.T, f FilterState) {
			if f != DefaultFilters() {
				t.Fatalf("expected defaults, got %+v", f)
			}
		}},
		{"city and type pass through", "city=Mumbai&type=Villa", func(t *testing.T, f FilterState) {
			if f.City != "Mumbai" || f.Type != "Villa" {
				t.Fatalf("got %+v", f)
			}
		}},
		{"numeric params", "minPrice=5000000&maxPrice=10000000&minBeds=2&minArea=800.5", func(t *testing.T, f FilterState) {
			if f.MinPrice != 5000000 || f.MaxPrice != 10000000 || f.MinBeds != 2 || f.MinArea != 800.5 {
				t.Fatalf("got %+v", f)
			}
		}},
		{"bad numbers fall back", "minPrice=abc&maxPrice=&minBeds=two", func(t *testing.T, f FilterState) {
			if f.MinPrice != 0 || f.MaxPrice != DefaultMaxPrice || f.MinBeds != 0 {
				t.Fatalf("got %+v", f)
			}
		}},
		{"valid sort", "sortBy=price-low", func(t *testing.T, f FilterState) {
			if f.SortBy != SortPriceLow {
				t.Fatalf("got %+v", f)
			}
		}},
		{"unknown sort falls back to newest", "sortBy=cheapest-first", func(t *testing.T, f FilterState) {
			if f.SortBy != SortNewest {
				t.Fatalf("got %+v", f)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.raw)
			if err != nil {
				t.Fatal(err)
			}
			tc.check(t, FromValues(q))
		})
	}
}

func TestPageFromValues(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=x", 1},
	}
	for _, tc := range cases {
		q, _ := url.ParseQuery(tc.raw)
		if got := PageFromValues(q); got != tc.want {
			t.Fatalf("%q: expected %d got %d", tc.raw, tc.want, got)
		}
	}
}
