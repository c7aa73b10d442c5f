package query

import (
	"net/url"
	"strconv"
)

// FromValues merges URL parameters over the defaults. Numeric parse
// failures fall back to the default value rather than erroring, so a
// malformed link still renders a sensible result. The pipeline itself
// never sees raw strings.
func FromValues(q url.Values) FilterState {
	f := DefaultFilters()
	f.Keyword = q.Get("keyword")
	f.City = q.Get("city")
	f.Type = q.Get("type")
	f.MinPrice = intParam(q, "minPrice", f.MinPrice)
	f.MaxPrice = intParam(q, "maxPrice", f.MaxPrice)
	f.MinBeds = intParam(q, "minBeds", f.MinBeds)
	f.MinArea = floatParam(q, "minArea", f.MinArea)
	if k := SortKey(q.Get("sortBy")); k.Valid() {
		f.SortBy = k
	}
	return f
}

// PageFromValues reads the 1-based page parameter, defaulting to 1.
func PageFromValues(q url.Values) int {
	p := intParam(q, "page", 1)
	if p < 1 {
		return 1
	}
	return p
}

func intParam(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func floatParam(q url.Values, key string, def float64) float64 {
	v := q.Get(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
