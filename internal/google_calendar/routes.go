package googlecalendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes covers the authenticated integration surface; the OAuth callback is
// mounted separately because Google redirects to it without a session cookie.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/connect", h.Connect)
	r.Post("/sync", h.Sync)
	r.Delete("/", h.Disconnect)

	return r
}
