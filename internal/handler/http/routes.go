package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.registerUser)
		r.Post("/api/login", h.login)
		r.Post("/api/refresh", h.refresh)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/logout", h.logout)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/me", h.currentUser)
		r.Get("/api/users/{id}", h.getUser)
		r.Put("/api/users", h.updateUser)
		r.Delete("/api/users", h.deleteUser)

		r.Post("/api/categories", h.createCategory)
		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{id}", h.getCategory)
		r.Put("/api/categories/{id}", h.updateCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)

		r.Post("/api/accounts", h.createAccount)
		r.Get("/api/accounts", h.listAccounts)
		r.Get("/api/accounts/{id}", h.getAccount)
		r.Put("/api/accounts/{id}", h.updateAccount)
		r.Delete("/api/accounts/{id}", h.deleteAccount)

		r.Post("/api/transactions", h.createTransaction)
		r.Get("/api/transactions", h.listTransactions)
		r.Get("/api/transactions/filter", h.filterTransactions)
		r.Get("/api/transactions/updated", h.updatedTransactions)
		r.Get("/api/transactions/{id}", h.getTransaction)
		r.Put("/api/transactions/{id}", h.updateTransaction)
		r.Delete("/api/transactions/{id}", h.deleteTransaction)

		r.Post("/api/goals", h.createGoal)
		r.Get("/api/goals", h.listGoals)
		r.Get("/api/goals/{id}", h.getGoal)
		r.Put("/api/goals/{id}", h.updateGoal)
		r.Delete("/api/goals/{id}", h.deleteGoal)
		r.Patch("/api/goals/{id}/complete", h.completeGoal)
		r.Patch("/api/goals/{id}/incomplete", h.incompleteGoal)

		r.Post("/api/reminders", h.createReminder)
		r.Get("/api/reminders", h.listReminders)
		r.Get("/api/reminders/{id}", h.getReminder)
		r.Put("/api/reminders/{id}", h.updateReminder)
		r.Delete("/api/reminders/{id}", h.deleteReminder)
		r.Patch("/api/reminders/{id}/activate", h.activateReminder)
		r.Patch("/api/reminders/{id}/deactivate", h.deactivateReminder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
