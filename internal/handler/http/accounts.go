package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var account models.Account
	if !decodeJSON(w, r, &account) {
		return
	}

	created, err := h.services.AccountService.CreateAccount(r.Context(), userID, account)
	if err != nil {
		handleError(w, r, err, "account creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "account lookup failed")
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")
	limit := queryInt(r, "limit", 0)

	accounts, err := h.services.AccountService.ListAccounts(r.Context(), userID, search, limit)
	if err != nil {
		handleError(w, r, err, "listing accounts failed")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update models.AccountUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	account, err := h.services.AccountService.UpdateAccount(r.Context(), userID, id, update)
	if err != nil {
		handleError(w, r, err, "account update failed")
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "account deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
