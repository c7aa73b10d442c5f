package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/nestfinder/browse-api/internal/events"
)

type AuthDeps struct {
	Profiles *Profiles
	Pub      events.Publisher
}

// Mock session endpoints. Login stores whatever identity is posted; there
// is no password and nothing is verified.
func RegisterAuth(r chi.Router, d AuthDeps) {
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeErr(w, req, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		if body.Name == "" || body.Email == "" {
			writeErr(w, req, http.StatusBadRequest, "name_and_email_required", "")
			return
		}
		profile := d.Profiles.Resolve(w, req)
		sess := d.Profiles.Session(req.Context(), profile)
		if err := sess.Login(req.Context(), body.Name, body.Email); err != nil {
			writeErr(w, req, http.StatusInternalServerError, "persist_error", err.Error())
			return
		}
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "session", Action: "login",
			})
		}
		u, _ := sess.User()
		render.JSON(w, req, map[string]any{"ok": true, "user": u})
	})

	r.Post("/auth/logout", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		sess := d.Profiles.Session(req.Context(), profile)
		if err := sess.Logout(req.Context()); err != nil {
			writeErr(w, req, http.StatusInternalServerError, "persist_error", err.Error())
			return
		}
		if d.Pub != nil {
			d.Pub.PublishProfileStateChanged(req.Context(), events.ProfileStateChanged{
				ProfileID: profile, Kind: "session", Action: "logout",
			})
		}
		render.JSON(w, req, map[string]any{"ok": true})
	})

	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		profile := d.Profiles.Resolve(w, req)
		sess := d.Profiles.Session(req.Context(), profile)
		resp := map[string]any{"ok": true, "authenticated": sess.IsAuthenticated()}
		if u, ok := sess.User(); ok {
			resp["user"] = u
		}
		render.JSON(w, req, resp)
	})
}
