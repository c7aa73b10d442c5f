package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/events"
)

type FavoritesDeps struct {
	Catalog  *catalog.Provider
	Profiles *Profiles
	Pub      events.Publisher
}

func RegisterFavorites(r chi.Router, d FavoritesDeps) {
	r.Get("/me/favorites", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		fav := d.Profiles.Favorites(req.Context(), profile)
		ids := fav.IDs()
		c := d.Catalog.Get()
		// ids whose listing no longer resolves stay favorited but render
		// nothing
		listings := make([]catalog.Listing, 0, len(ids))
		for _, id := range ids {
			if l, ok := c.ListingByID(id); ok {
				listings = append(listings, l)
			}
		}
		render.JSON(w, req, map[string]any{
			"ok":       true,
			"count":    fav.Count(),
			"ids":      ids,
			"listings": listings,
		})
	})

	r.Post("/me/favorites/{listingID}/toggle", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		id := chi.URLParam(req, "listingID")
		fav := d.Profiles.Favorites(req.Context(), profile)
		nowFavorite, err := fav.Toggle(req.Context(), id)
		if err != nil {
			writeErr(w, req, http.StatusInternalServerError, "persist_error", err.Error())
			return
		}
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "favorites", Action: "toggle", ListingID: id,
			})
		}
		render.JSON(w, req, map[string]any{"ok": true, "favorite": nowFavorite, "count": fav.Count()})
	})

	r.Delete("/me/favorites", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		fav := d.Profiles.Favorites(req.Context(), profile)
		if err := fav.Clear(req.Context()); err != nil {
			writeErr(w, req, http.StatusInternalServerError, "persist_error", err.Error())
			return
		}
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "favorites", Action: "clear",
			})
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": 0})
	})
}
