package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/catalog"
)

type AgentsDeps struct {
	Catalog *catalog.Provider
}

const defaultTopAgents = 4

func RegisterAgents(r chi.Router, d AgentsDeps) {
	r.Get("/agents", func(w http.ResponseWriter, req *http.Request) {
		agents := d.Catalog.Get().Agents()
		render.JSON(w, req, map[string]any{"ok": true, "count": len(agents), "agents": agents})
	})

	r.Get("/agents/top", func(w http.ResponseWriter, req *http.Request) {
		limit := defaultTopAgents
		if v := req.URL.Query().Get("limit"); v != "" {
			if i, err := strconv.Atoi(v); err == nil && i > 0 {
				limit = i
			}
		}
		agents := d.Catalog.Get().TopAgents(limit)
		render.JSON(w, req, map[string]any{"ok": true, "count": len(agents), "agents": agents})
	})

	r.Get("/agents/{agentID}", func(w http.ResponseWriter, req *http.Request) {
		a, ok := d.Catalog.Get().AgentByID(chi.URLParam(req, "agentID"))
		if !ok {
			writeErr(w, req, http.StatusNotFound, "not_found", "")
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "agent": a})
	})

	// The agent's live listings. The agent record's stored listing count
	// is advertising copy and is not reconciled with this.
	r.Get("/agents/{agentID}/listings", func(w http.ResponseWriter, req *http.Request) {
		c := d.Catalog.Get()
		id := chi.URLParam(req, "agentID")
		if _, ok := c.AgentByID(id); !ok {
			writeErr(w, req, http.StatusNotFound, "not_found", "")
			return
		}
		listings := c.ListingsByAgent(id)
		render.JSON(w, req, map[string]any{"ok": true, "count": len(listings), "listings": listings})
	})
}
