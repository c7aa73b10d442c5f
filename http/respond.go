package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
)

func writeErr(w http.ResponseWriter, req *http.Request, status int, code string, detail string) {
	render.Status(req, status)
	body := map[string]any{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	render.JSON(w, req, body)
}
