package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/comparetable"
	"github.com/nestfinder/browse-api/internal/events"
	"github.com/nestfinder/browse-api/internal/userstate"
)

type CompareDeps struct {
	Catalog  *catalog.Provider
	Profiles *Profiles
	Pub      events.Publisher
}

func RegisterCompare(r chi.Router, d CompareDeps) {
	r.Get("/me/compare", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		cmp := d.Profiles.Compare(profile)
		ids := cmp.List()
		render.JSON(w, req, map[string]any{
			"ok":         true,
			"count":      cmp.Count(),
			"canAddMore": cmp.CanAddMore(),
			"ids":        ids,
			"listings":   resolveCompare(d.Catalog.Get(), ids),
		})
	})

	r.Post("/me/compare/{listingID}", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		id := chi.URLParam(req, "listingID")
		cmp := d.Profiles.Compare(profile)
		result := cmp.Add(id)
		if result == userstate.Added && d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "compare", Action: "add", ListingID: id,
			})
		}
		render.JSON(w, req, map[string]any{
			"ok":         true,
			"result":     result.String(),
			"count":      cmp.Count(),
			"canAddMore": cmp.CanAddMore(),
		})
	})

	r.Delete("/me/compare/{listingID}", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		id := chi.URLParam(req, "listingID")
		cmp := d.Profiles.Compare(profile)
		cmp.Remove(id)
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "compare", Action: "remove", ListingID: id,
			})
		}
		render.JSON(w, req, map[string]any{"ok": true, "result": "removed", "count": cmp.Count()})
	})

	r.Delete("/me/compare", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		d.Profiles.Compare(profile).Clear()
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "compare", Action: "clear",
			})
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": 0})
	})

	r.Get("/me/compare/table", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		cmp := d.Profiles.Compare(profile)
		table := comparetable.Build(resolveCompare(d.Catalog.Get(), cmp.List()))
		render.JSON(w, req, map[string]any{"ok": true, "table": table})
	})
}

// resolveCompare maps compare ids to listings, silently dropping ids that
// no longer resolve; order is preserved.
func resolveCompare(c *catalog.Catalog, ids []string) []catalog.Listing {
	out := make([]catalog.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := c.ListingByID(id); ok {
			out = append(out, l)
		}
	}
	return out
}
