package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/auth"
	"github.com/rafaelpontes/focushub/internal/config"
)

type Handler struct {
	service EventService
}

func NewHandler(service EventService) *Handler {
	return &Handler{service: service}
}

func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return uuid.MustParse(claims.UserID), true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrGoogleReadOnly):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Failed to " + action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func queryTime(r *http.Request, name string) (time.Time, error) {
	return time.Parse(time.RFC3339, r.URL.Query().Get(name))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto CreateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "create event")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) ListRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	from, err := queryTime(r, "from")
	if err != nil {
		http.Error(w, "invalid or missing 'from' (RFC3339)", http.StatusBadRequest)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		http.Error(w, "invalid or missing 'to' (RFC3339)", http.StatusBadRequest)
		return
	}

	events, err := h.service.ListRange(r.Context(), userID, from, to)
	if err != nil {
		writeServiceError(w, r, err, "list events")
		return
	}

	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) ListToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	events, err := h.service.ListDay(r.Context(), userID, time.Now())
	if err != nil {
		writeServiceError(w, r, err, "list today's events")
		return
	}

	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) ListWeek(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	events, err := h.service.ListWeek(r.Context(), userID, time.Now())
	if err != nil {
		writeServiceError(w, r, err, "list week's events")
		return
	}

	config.JSON(w, http.StatusOK, events)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err, "get event")
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateEventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.Update(r.Context(), id, userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "update event")
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, r, err, "delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
