package http

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var reminder models.Reminder
	if !decodeJSON(w, r, &reminder) {
		return
	}

	created, err := h.services.ReminderService.CreateReminder(r.Context(), userID, reminder)
	if err != nil {
		handleError(w, r, err, "reminder creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reminder, err := h.services.ReminderService.GetReminder(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, err, "reminder lookup failed")
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	active, err := queryBoolPtr(r, "active")
	if err != nil {
		log.Err(err).Msg("malformed active parameter")
		http.Error(w, "malformed active parameter", http.StatusUnprocessableEntity)
		return
	}
	limit := queryInt(r, "limit", 0)

	reminders, err := h.services.ReminderService.ListReminders(r.Context(), userID, active, limit)
	if err != nil {
		handleError(w, r, err, "listing reminders failed")
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) updateReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var update models.ReminderUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	reminder, err := h.services.ReminderService.UpdateReminder(r.Context(), userID, id, update)
	if err != nil {
		handleError(w, r, err, "reminder update failed")
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.ReminderService.DeleteReminder(r.Context(), userID, id); err != nil {
		handleError(w, r, err, "reminder deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activateReminder(w http.ResponseWriter, r *http.Request) {
	h.setReminderActive(w, r, true)
}

func (h *Handler) deactivateReminder(w http.ResponseWriter, r *http.Request) {
	h.setReminderActive(w, r, false)
}

func (h *Handler) setReminderActive(w http.ResponseWriter, r *http.Request, active bool) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reminder, err := h.services.ReminderService.SetReminderActive(r.Context(), userID, id, active)
	if err != nil {
		handleError(w, r, err, "setting reminder active flag failed")
		return
	}

	utils.WriteJSON(w, reminder, http.StatusOK)
}
