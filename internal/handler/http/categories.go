package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request categoryRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), userID, request.Name)
	if err != nil {
		handleError(w, r, err, "category creation failed")
		return
	}

	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "category lookup failed")
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")
	limit := queryInt(r, "limit", 0)

	categories, err := h.services.CategoryService.ListCategories(r.Context(), userID, search, limit)
	if err != nil {
		handleError(w, r, err, "listing categories failed")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update models.CategoryUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), userID, id, update)
	if err != nil {
		handleError(w, r, err, "category update failed")
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "category deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
