package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/today", h.ListToday)
	r.Get("/week", h.ListWeek)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.ListRange)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
