package timeentry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start", h.Start)
	r.Post("/stop", h.Stop)
	r.Get("/current", h.Current)

	r.Route("/entries", func(r chi.Router) {
		r.Post("/", h.CreateManual)
		r.Get("/", h.List)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
