package query

// SortKey selects the one comparator applied to the filtered result.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortArea      SortKey = "area"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPriceLow, SortPriceHigh, SortArea:
		return true
	}
	return false
}

const (
	// DefaultMaxPrice is the price ceiling applied when no upper bound is
	// requested. Mirrors the widest setting of the filter UI.
	DefaultMaxPrice = 50_000_000

	// PageSize is the fixed result page length.
	PageSize = 9

	// Any is the sentinel meaning "unconstrained" for city and type.
	Any = "all"
)

// FilterState is the complete description of a search/sort request. It is
// built from defaults and merged with URL or body parameters; it is never
// persisted.
type FilterState struct {
	Keyword  string  `json:"keyword"`
	City     string  `json:"city"`
	Type     string  `json:"type"`
	MinPrice int     `json:"minPrice"`
	MaxPrice int     `json:"maxPrice"`
	MinBeds  int     `json:"minBeds"`
	MinArea  float64 `json:"minArea"`
	SortBy   SortKey `json:"sortBy"`
}

func DefaultFilters() FilterState {
	return FilterState{
		MinPrice: 0,
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortNewest,
	}
}

func (f FilterState) cityConstrained() bool { return f.City != "" && f.City != Any }
func (f FilterState) typeConstrained() bool { return f.Type != "" && f.Type != Any }
