package googlecalendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/auth"
	"github.com/rafaelpontes/focushub/internal/config"
)

const stateTTL = 10 * time.Minute

type Handler struct {
	service SyncService
}

func NewHandler(service SyncService) *Handler {
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
	case errors.Is(err, ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingCalendarTokens):
		http.Error(w, "google calendar is not connected", http.StatusConflict)
	case errors.Is(err, ErrProviderUnavailable), errors.Is(err, ErrDecryptionFailed):
		http.Error(w, "google calendar unavailable, try again later", http.StatusBadGateway)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Failed to " + action)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Connect hands the client a consent URL whose state is a short-lived signed
// token carrying the user id, so the callback can run outside the session.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	state, err := auth.GenerateJWT(userID.String(), auth.RoleOAuthState, stateTTL)
	if err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Failed to sign oauth state")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ConnectResponse{AuthURL: h.service.AuthURL(state)})
}

func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}

	claims, err := auth.ValidateJWT(r.URL.Query().Get("state"))
	if err != nil || claims.Role != auth.RoleOAuthState {
		log.Warn("Invalid oauth state")
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	if err := h.service.Connect(r.Context(), userID, code); err != nil {
		writeServiceError(w, r, err, "connect google calendar")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "google calendar connected"})
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var dto SyncRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.From.IsZero() || dto.To.IsZero() || !dto.To.After(dto.From) {
		http.Error(w, "'to' must be after 'from'", http.StatusBadRequest)
		return
	}

	result, err := h.service.Sync(r.Context(), userID, dto.From, dto.To)
	if err != nil {
		writeServiceError(w, r, err, "sync google calendar")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Disconnect(r.Context(), userID); err != nil {
		writeServiceError(w, r, err, "disconnect google calendar")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
