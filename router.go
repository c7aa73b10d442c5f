package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	httpapi "github.com/nestfinder/browse-api/http"
	"github.com/nestfinder/browse-api/internal/catalog"
	"github.com/nestfinder/browse-api/internal/events"
	"github.com/nestfinder/browse-api/internal/refresh"
)

type RouterDeps struct {
	Catalog  *catalog.Provider
	Profiles *httpapi.Profiles
	Pub      events.Publisher
	Reloader *refresh.Reloader
}

func BuildRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(300, 1*time.Minute))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })

	httpapi.RegisterListings(r, httpapi.ListingsDeps{Catalog: deps.Catalog})
	httpapi.RegisterAgents(r, httpapi.AgentsDeps{Catalog: deps.Catalog})
	httpapi.RegisterFavorites(r, httpapi.FavoritesDeps{Catalog: deps.Catalog, Profiles: deps.Profiles, Pub: deps.Pub})
	httpapi.RegisterCompare(r, httpapi.CompareDeps{Catalog: deps.Catalog, Profiles: deps.Profiles, Pub: deps.Pub})
	httpapi.RegisterAuth(r, httpapi.AuthDeps{Profiles: deps.Profiles, Pub: deps.Pub})
	httpapi.RegisterContact(r, httpapi.ContactDeps{})
	httpapi.RegisterAdmin(r, httpapi.AdminDeps{Reloader: deps.Reloader})

	return r
}
