package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/refresh"
)

type AdminDeps struct {
	Reloader *refresh.Reloader
}

func RegisterAdmin(r chi.Router, d AdminDeps) {
	r.Post("/admin/reload", func(w http.ResponseWriter, req *http.Request) {
		if d.Reloader == nil {
			writeErr(w, req, http.StatusServiceUnavailable, "reload_unavailable", "")
			return
		}
		if !d.Reloader.Enqueue() {
			writeErr(w, req, http.StatusTooManyRequests, "reload_throttled", "")
			return
		}
		render.Status(req, http.StatusAccepted)
		render.JSON(w, req, map[string]any{"ok": true, "queued": true})
	})
}
