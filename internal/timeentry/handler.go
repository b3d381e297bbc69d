package timeentry

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
	service EntryService
}

func NewHandler(service EntryService) *Handler {
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
	case errors.Is(err, ErrEntryAlreadyRunning):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNoRunningEntry), errors.Is(err, ErrEntryNotFound), errors.Is(err, ErrProjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidInterval):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Failed to " + action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto StartDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.ProjectID == uuid.Nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	e, err := h.service.Start(r.Context(), userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "start time entry")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	e, err := h.service.Stop(r.Context(), userID, time.Now())
	if err != nil {
		writeServiceError(w, r, err, "stop time entry")
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	e, err := h.service.Current(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "get current time entry")
		return
	}
	if e == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	config.JSON(w, http.StatusOK, e)
}

func (h *Handler) CreateManual(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.ProjectID == uuid.Nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	e, err := h.service.CreateManual(r.Context(), userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "create time entry")
		return
	}

	config.JSON(w, http.StatusCreated, e)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid or missing 'from' (RFC3339)", http.StatusBadRequest)
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid or missing 'to' (RFC3339)", http.StatusBadRequest)
		return
	}

	var projectID *uuid.UUID
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid project_id", http.StatusBadRequest)
			return
		}
		projectID = &id
	}

	entries, err := h.service.List(r.Context(), userID, from, to, projectID)
	if err != nil {
		writeServiceError(w, r, err, "list time entries")
		return
	}

	config.JSON(w, http.StatusOK, entries)
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

	var dto UpdateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.Update(r.Context(), id, userID, dto)
	if err != nil {
		writeServiceError(w, r, err, "update time entry")
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
		writeServiceError(w, r, err, "delete time entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
