package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

// registrationRequest is the body of POST /api/users.
type registrationRequest struct {
	Username string `json:"username"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registrationRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request.Username, models.Credentials{
		Login:    request.Login,
		Password: request.Password,
	})
	if err != nil {
		handleError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", user.ID).Str("login", user.Login).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, err, "listing users failed")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var update models.UserUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, update)
	if err != nil {
		handleError(w, r, err, "user update failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		handleError(w, r, err, "user deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
