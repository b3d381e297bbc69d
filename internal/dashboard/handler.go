package dashboard

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/auth"
	"github.com/rafaelpontes/focushub/internal/config"
)

type Handler struct {
	service DashboardService
}

func NewHandler(service DashboardService) *Handler {
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

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	weekOf := time.Now()
	if raw := r.URL.Query().Get("week_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid week_of (YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		weekOf = parsed
	}

	overview, err := h.service.Overview(r.Context(), userID, weekOf)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to build overview")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, overview)
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	today, err := h.service.Today(r.Context(), userID, time.Now())
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to build today view")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, today)
}

func (h *Handler) TimeStats(w http.ResponseWriter, r *http.Request) {
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
	if !to.After(from) {
		http.Error(w, "'to' must be after 'from'", http.StatusBadRequest)
		return
	}

	stats, err := h.service.TimeStats(r.Context(), userID, from, to)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to build time stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
