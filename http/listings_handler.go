package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/query"
)

type ListingsDeps struct {
	Catalog *catalog.Provider
}

// QueryRequest is the POST body form of a filter query. Pointer fields
// distinguish "absent" from zero so defaults survive a partial body.
type QueryRequest struct {
	Keyword  string   `json:"keyword,omitempty"`
	City     string   `json:"city,omitempty"`
	Type     string   `json:"type,omitempty"`
	MinPrice *int     `json:"minPrice,omitempty"`
	MaxPrice *int     `json:"maxPrice,omitempty"`
	MinBeds  *int     `json:"minBeds,omitempty"`
	MinArea  *float64 `json:"minArea,omitempty"`
	SortBy   string   `json:"sortBy,omitempty"`
	Page     *int     `json:"page,omitempty"`
}

func defInt(v *int, d int) int {
	if v == nil {
		return d
	}
	return *v
}

func defFloat(v *float64, d float64) float64 {
	if v == nil {
		return d
	}
	return *v
}

func (b QueryRequest) filters() query.FilterState {
	f := query.DefaultFilters()
	f.Keyword = b.Keyword
	f.City = b.City
	f.Type = b.Type
	f.MinPrice = defInt(b.MinPrice, f.MinPrice)
	f.MaxPrice = defInt(b.MaxPrice, f.MaxPrice)
	f.MinBeds = defInt(b.MinBeds, f.MinBeds)
	f.MinArea = defFloat(b.MinArea, f.MinArea)
	if k := query.SortKey(b.SortBy); k.Valid() {
		f.SortBy = k
	}
	return f
}

func RegisterListings(r chi.Router, d ListingsDeps) {
	// GET: query params (URL-seeded filter state)
	r.Get("/listings", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		f := query.FromValues(q)
		page := query.PageFromValues(q)
		serveQuery(w, req, d, f, page)
	})

	// POST: JSON body
	r.Post("/listings", func(w http.ResponseWriter, req *http.Request) {
		var body QueryRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeErr(w, req, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		page := defInt(body.Page, 1)
		if page < 1 {
			page = 1
		}
		serveQuery(w, req, d, body.filters(), page)
	})

	r.Get("/listings/facets", func(w http.ResponseWriter, req *http.Request) {
		c := d.Catalog.Get()
		minPrice, maxPrice := c.PriceRange()
		render.JSON(w, req, map[string]any{
			"ok":     true,
			"cities": c.Cities(),
			"types":  c.Types(),
			"priceRange": map[string]int{
				"min": minPrice,
				"max": maxPrice,
			},
		})
	})

	r.Get("/listings/featured", func(w http.ResponseWriter, req *http.Request) {
		featured := d.Catalog.Get().Featured()
		render.JSON(w, req, map[string]any{"ok": true, "count": len(featured), "listings": featured})
	})

	r.Get("/listings/{listingID}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "listingID")
		c := d.Catalog.Get()
		l, ok := c.ListingByID(id)
		if !ok {
			writeErr(w, req, http.StatusNotFound, "not_found", "")
			return
		}
		resp := map[string]any{"ok": true, "listing": l}
		// agent is advisory; a dangling agent_id just omits it
		if a, ok := c.AgentByID(l.AgentID); ok {
			resp["agent"] = a
		}
		render.JSON(w, req, resp)
	})

	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		text := req.URL.Query().Get("q")
		results := d.Catalog.Get().Search(text)
		render.JSON(w, req, map[string]any{"ok": true, "count": len(results), "listings": results})
	})
}

func serveQuery(w http.ResponseWriter, req *http.Request, d ListingsDeps, f query.FilterState, page int) {
	filtered := query.Apply(d.Catalog.Get().Listings(), f)
	pageItems := query.Paginate(filtered, page)
	render.JSON(w, req, map[string]any{
		"ok":         true,
		"total":      len(filtered),
		"page":       page,
		"pageSize":   query.PageSize,
		"totalPages": query.TotalPages(len(filtered)),
		"count":      len(pageItems),
		"listings":   pageItems,
	})
}
