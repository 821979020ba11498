package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if !decodeJSON(w, r, &credentials) {
		return
	}

	pair, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		handleError(w, r, err, "login failed")
		return
	}

	log.Debug().Str("login", credentials.Login).Msg("user successfully logged in")
	utils.WriteJSON(w, pair, http.StatusOK)
}

// refresh exchanges the refresh token passed in the refresh_token query
// parameter for a fresh pair. The presented token is consumed whether or
// not a concurrent exchange races it; only one caller gets the new pair.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	refreshToken := r.URL.Query().Get("refresh_token")
	if refreshToken == "" {
		log.Error().Msg("missing refresh_token parameter")
		http.Error(w, "missing refresh_token parameter", http.StatusUnauthorized)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, refreshToken)
	if err != nil {
		handleError(w, r, err, "token refresh failed")
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		handleError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
