package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ContactDeps struct{}

// RegisterContact accepts contact-form submissions. There is no delivery
// backend; accepted messages are acknowledged and logged.
func RegisterContact(r chi.Router, _ ContactDeps) {
	r.Post("/contact", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
			Message   string `json:"message"`
			ListingID string `json:"listingId"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeErr(w, req, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}
		if body.Name == "" || body.Email == "" || body.Message == "" {
			writeErr(w, req, http.StatusBadRequest, "required_fields", "name, email and message are required")
			return
		}
		if body.ListingID != "" {
			log.Printf("[INFO] contact: %s <%s> about listing %s", body.Name, body.Email, body.ListingID)
		} else {
			log.Printf("[INFO] contact: %s <%s>", body.Name, body.Email)
		}
		render.JSON(w, req, map[string]any{"ok": true})
	})
}
