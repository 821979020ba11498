// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the finance tracker:
// credential handling, token lifecycle, ownership checks and the
// validation that sits between HTTP handlers and repositories.
package service

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/models"
)

// AuthService owns the credential and session lifecycle: registration,
// login, refresh-token rotation and logout.
type AuthService interface {
	// RegisterUser creates an account from plaintext credentials. The
	// password is hashed before it reaches storage.
	RegisterUser(ctx context.Context, username string, credentials models.Credentials) (models.User, error)

	// Login verifies credentials and opens a session, storing the issued
	// refresh token on the user row.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)

	// Refresh exchanges a refresh token for a fresh pair. The presented
	// token is single-use: the exchange bumps the user's token version so
	// a replay of the same token fails.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// Logout invalidates the user's session by clearing the stored
	// refresh token and bumping the token version.
	Logout(ctx context.Context, userID int64) error

	// ParseToken validates a raw access token string and returns its
	// decoded form. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolvePrincipal validates an access token and confirms that the
	// user it references still exists. A token outliving its deleted
	// account fails with ErrTokenIsExpiredOrInvalid, same as any other
	// invalid token.
	ResolvePrincipal(ctx context.Context, tokenString string) (int64, error)
}

// UserService exposes user profile reads and self-service mutation.
type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser patches the caller's own profile. A provided password is
	// re-hashed.
	UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the caller's own account and everything owned
	// by it.
	DeleteUser(ctx context.Context, callerID int64) error
}

// CategoryService enforces system-category semantics: NULL-owner
// categories are readable by everyone and mutable by no one.
type CategoryService interface {
	CreateCategory(ctx context.Context, callerID int64, name string) (models.Category, error)
	GetCategory(ctx context.Context, callerID, id int64) (models.Category, error)
	ListCategories(ctx context.Context, callerID int64, search string, limit int) ([]models.Category, error)
	UpdateCategory(ctx context.Context, callerID, id int64, update models.CategoryUpdate) (models.Category, error)

	// DeleteCategory refuses with ErrCategoryInUse while any non-deleted
	// transaction, of any user, still references the category.
	DeleteCategory(ctx context.Context, callerID, id int64) error
}

// AccountService manages the caller's money accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, callerID int64, account models.Account) (models.Account, error)
	GetAccount(ctx context.Context, callerID, id int64) (models.Account, error)
	ListAccounts(ctx context.Context, callerID int64, search string, limit int) ([]models.Account, error)
	UpdateAccount(ctx context.Context, callerID, id int64, update models.AccountUpdate) (models.Account, error)
	DeleteAccount(ctx context.Context, callerID, id int64) error
}

// TransactionService manages money movements, their soft-delete lifecycle
// and the query surface built on top of them.
type TransactionService interface {
	CreateTransaction(ctx context.Context, callerID int64, transaction models.Transaction) (models.Transaction, error)
	GetTransaction(ctx context.Context, callerID, id int64) (models.Transaction, error)

	// ListTransactions returns one page plus pagination metadata. Sort
	// parameters outside the whitelist fail with
	// ErrInvalidSortParameters.
	ListTransactions(ctx context.Context, callerID int64, search string, query models.TransactionPageQuery) (models.TransactionPage, error)

	UpdateTransaction(ctx context.Context, callerID, id int64, update models.TransactionUpdate) (models.Transaction, error)

	// DeleteTransaction soft-deletes. Deleting an already-deleted
	// transaction the caller owns is a no-op success.
	DeleteTransaction(ctx context.Context, callerID, id int64) error

	// FilterTransactionIDs returns ascending matching ids. Referencing
	// another user's category or account in the filter fails with
	// ErrNotAllowed.
	FilterTransactionIDs(ctx context.Context, callerID int64, filter models.TransactionFilter) ([]int64, error)

	// UpdatedTransactionIDs is the change feed: ids of rows, deleted ones
	// included, touched at or after since.
	UpdatedTransactionIDs(ctx context.Context, callerID int64, since time.Time) ([]int64, error)
}

// GoalService manages savings goals and their completion toggle.
type GoalService interface {
	CreateGoal(ctx context.Context, callerID int64, goal models.Goal) (models.Goal, error)
	GetGoal(ctx context.Context, callerID, id int64) (models.Goal, error)
	ListGoals(ctx context.Context, callerID int64, completed *bool, limit int) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, callerID, id int64, update models.GoalUpdate) (models.Goal, error)
	DeleteGoal(ctx context.Context, callerID, id int64) error
	SetGoalCompletion(ctx context.Context, callerID, id int64, completed bool) (models.Goal, error)
}

// ReminderService manages payment reminders and their active toggle.
type ReminderService interface {
	CreateReminder(ctx context.Context, callerID int64, reminder models.Reminder) (models.Reminder, error)
	GetReminder(ctx context.Context, callerID, id int64) (models.Reminder, error)
	ListReminders(ctx context.Context, callerID int64, active *bool, limit int) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, callerID, id int64, update models.ReminderUpdate) (models.Reminder, error)
	DeleteReminder(ctx context.Context, callerID, id int64) error
	SetReminderActive(ctx context.Context, callerID, id int64, active bool) (models.Reminder, error)
}
