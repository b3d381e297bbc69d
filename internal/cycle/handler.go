package cycle

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
	service CycleService
}

func NewHandler(service CycleService) *Handler {
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
	case errors.Is(err, ErrCycleNotFound), errors.Is(err, ErrProjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Failed to " + action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto CreateCycleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "create cycle")
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	cycles, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list cycles")
		return
	}

	config.JSON(w, http.StatusOK, cycles)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Current(r.Context(), userID, time.Now())
	if err != nil {
		writeServiceError(w, r, err, "get current cycle")
		return
	}
	if c == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	config.JSON(w, http.StatusOK, c)
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

	c, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, r, err, "get cycle")
		return
	}

	config.JSON(w, http.StatusOK, c)
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

	var dto UpdateCycleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.service.Update(r.Context(), id, userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "update cycle")
		return
	}

	config.JSON(w, http.StatusOK, c)
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
		writeServiceError(w, r, err, "delete cycle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
