package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var goal models.Goal
	if !decodeJSON(w, r, &goal) {
		return
	}

	created, err := h.services.GoalService.CreateGoal(r.Context(), userID, goal)
	if err != nil {
		handleError(w, r, err, "goal creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	goal, err := h.services.GoalService.GetGoal(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "goal lookup failed")
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	completed, err := queryBoolPtr(r, "completed")
	if err != nil {
		log.Err(err).Msg("malformed completed parameter")
		http.Error(w, "malformed completed parameter", http.StatusUnprocessableEntity)
		return
	}
	limit := queryInt(r, "limit", 0)

	goals, err := h.services.GoalService.ListGoals(r.Context(), userID, completed, limit)
	if err != nil {
		handleError(w, r, err, "listing goals failed")
		return
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update models.GoalUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	goal, err := h.services.GoalService.UpdateGoal(r.Context(), userID, id, update)
	if err != nil {
		handleError(w, r, err, "goal update failed")
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.GoalService.DeleteGoal(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "goal deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) completeGoal(w http.ResponseWriter, r *http.Request) {
	h.setGoalCompletion(w, r, true)
}

func (h *Handler) incompleteGoal(w http.ResponseWriter, r *http.Request) {
	h.setGoalCompletion(w, r, false)
}

func (h *Handler) setGoalCompletion(w http.ResponseWriter, r *http.Request, completed bool) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	goal, err := h.services.GoalService.SetGoalCompletion(r.Context(), userID, id, completed)
	if err != nil {
		handleError(w, r, err, "setting goal completion failed")
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}
