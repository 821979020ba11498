// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var transaction models.Transaction
	if !decodeJSON(w, r, &transaction) {
		return
	}

	created, err := h.services.TransactionService.CreateTransaction(r.Context(), userID, transaction)
	if err != nil {
		handleError(w, r, err, "transaction creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	transaction, err := h.services.TransactionService.GetTransaction(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "transaction lookup failed")
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

// listTransactions serves the paginated list. Sort parameters are
// validated downstream; unknown columns or orders yield 422.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	query := models.TransactionPageQuery{
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	search := r.URL.Query().Get("search")

	page, err := h.services.TransactionService.ListTransactions(r.Context(), userID, search, query)
	if err != nil {
		handleError(w, r, err, "listing transactions failed")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update models.TransactionUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	transaction, err := h.services.TransactionService.UpdateTransaction(r.Context(), userID, id, update)
	if err != nil {
		handleError(w, r, err, "transaction update failed")
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.TransactionService.DeleteTransaction(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "transaction deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// filterTransactions returns the ids of the caller's transactions matching
// every supplied predicate, ascending. Malformed numeric or date
// parameters yield 422.
func (h *Handler) filterTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("malformed filter parameter")
		http.Error(w, "malformed filter parameter", http.StatusUnprocessableEntity)
		return
	}

	ids, err := h.services.TransactionService.FilterTransactionIDs(r.Context(), userID, filter)
	if err != nil {
		handleError(w, r, err, "filtering transactions failed")
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}

func filterFromQuery(r *http.Request) (models.TransactionFilter, error) {
	filter := models.TransactionFilter{Search: r.URL.Query().Get("search")}

	var err error
	if filter.CategoryID, err = queryInt64Ptr(r, "category_id"); err != nil {
		return models.TransactionFilter{}, err
	}
	if filter.AccountID, err = queryInt64Ptr(r, "account_id"); err != nil {
		return models.TransactionFilter{}, err
	}
	if filter.FromDate, err = queryTimePtr(r, "from_date"); err != nil {
		return models.TransactionFilter{}, err
	}
	if filter.ToDate, err = queryTimePtr(r, "to_date"); err != nil {
		return models.TransactionFilter{}, err
	}
	if filter.MinAmount, err = queryFloatPtr(r, "min_amount"); err != nil {
		return models.TransactionFilter{}, err
	}
	if filter.MaxAmount, err = queryFloatPtr(r, "max_amount"); err != nil {
		return models.TransactionFilter{}, err
	}

	return filter, nil
}

// updatedTransactions is the change feed for incremental sync. The
// updated_since parameter is a unix timestamp in seconds; a missing or
// malformed value yields an empty list rather than an error, so naive
// clients polling with junk still get a well-formed response.
func (h *Handler) updatedTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	seconds, err := strconv.ParseInt(r.URL.Query().Get("updated_since"), 10, 64)
	if err != nil {
		log.Debug().Str("updated_since", r.URL.Query().Get("updated_since")).Msg("malformed updated_since parameter, returning empty feed")
		utils.WriteJSON(w, []int64{}, http.StatusOK)
		return
	}

	ids, err := h.services.TransactionService.UpdatedTransactionIDs(r.Context(), userID, time.Unix(seconds, 0))
	if err != nil {
		handleError(w, r, err, "change feed query failed")
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	utils.WriteJSON(w, ids, http.StatusOK)
}
