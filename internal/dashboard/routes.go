package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/overview", h.Overview)
	r.Get("/today", h.Today)
	r.Get("/time-stats", h.TimeStats)

	return r
}
