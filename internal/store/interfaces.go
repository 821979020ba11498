// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the PostgreSQL persistence layer: one repository
// per aggregate, a shared connection wrapper and schema migration entry
// point. Repositories speak in models and sentinel errors; they enforce no
// ownership rules, that is the service layer's job.
package store

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/models"
)

// UserRepository persists user accounts and their session state. The
// refresh token and its version epoch live on the user row, so rotation
// and invalidation are single conditional updates.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update. A non-nil Password must already
	// carry the hash; the repository never sees plaintext.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// StoreRefreshToken overwrites the live refresh token for the user.
	StoreRefreshToken(ctx context.Context, userID int64, token string) error

	// RotateRefreshToken atomically swaps the presented token for the next
	// one and bumps the version epoch. It fails with
	// ErrRefreshTokenMismatch when the presented token or version is stale,
	// so a concurrently replayed token loses the race.
	RotateRefreshToken(ctx context.Context, userID int64, presented string, presentedVersion int64, next string) (models.User, error)

	// ClearRefreshToken drops the live token and bumps the version epoch,
	// invalidating every outstanding refresh token for the user.
	ClearRefreshToken(ctx context.Context, userID int64) error
}

// CategoryRepository persists categories. System categories have a NULL
// user_id and are returned alongside the user's own rows by
// ListCategories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context, userID int64, search string, limit int) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// CountTransactionsByCategory counts non-deleted transactions that
	// reference the category, across all users.
	CountTransactionsByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// AccountRepository persists money accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	ListAccounts(ctx context.Context, userID int64, search string, limit int) ([]models.Account, error)
	UpdateAccount(ctx context.Context, id int64, update models.AccountUpdate) (models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// TransactionRepository persists transactions. Reads exclude soft-deleted
// rows unless the method name says otherwise.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (models.Transaction, error)

	// GetTransactionIncludingDeleted fetches a row regardless of its
	// soft-delete flag. Used for idempotent re-delete.
	GetTransactionIncludingDeleted(ctx context.Context, id int64) (models.Transaction, error)

	// ListTransactionsPage returns one sorted page of the user's
	// non-deleted transactions plus the total count before windowing.
	ListTransactionsPage(ctx context.Context, userID int64, search string, query models.TransactionPageQuery) ([]models.Transaction, int64, error)

	UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error)

	// SoftDeleteTransaction flips is_deleted and stamps updated_at.
	SoftDeleteTransaction(ctx context.Context, id int64) error

	// FilterTransactionIDs returns ascending ids of the user's non-deleted
	// transactions matching all of the filter's predicates.
	FilterTransactionIDs(ctx context.Context, userID int64, filter models.TransactionFilter) ([]int64, error)

	// UpdatedTransactionIDs returns ids of rows, deleted ones included,
	// touched at or after since, ordered by (updated_at, id).
	UpdatedTransactionIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error)
}

// GoalRepository persists savings goals.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	GetGoal(ctx context.Context, id int64) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64, completed *bool, limit int) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, id int64, update models.GoalUpdate) (models.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
	SetGoalCompletion(ctx context.Context, id int64, completed bool) (models.Goal, error)
}

// ReminderRepository persists payment reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	GetReminder(ctx context.Context, id int64) (models.Reminder, error)
	ListReminders(ctx context.Context, userID int64, active *bool, limit int) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, update models.ReminderUpdate) (models.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
	SetReminderActive(ctx context.Context, id int64, active bool) (models.Reminder, error)
}
