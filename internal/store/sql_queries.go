package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/fintrack/fintrack/models"
)

// Static queries live here as constants; anything whose shape depends on
// request parameters is assembled with squirrel below.
const (
	insertUserQuery = `INSERT INTO users (username, login, password_hash)
VALUES ($1, $2, $3)
RETURNING id, username, login, password_hash, refresh_token, token_version, created_at`

	selectUserByLoginQuery = `SELECT id, username, login, password_hash, refresh_token, token_version, created_at
FROM users WHERE login = $1`

	selectUserByIDQuery = `SELECT id, username, login, password_hash, refresh_token, token_version, created_at
FROM users WHERE id = $1`

	selectAllUsersQuery = `SELECT id, username, login, password_hash, refresh_token, token_version, created_at
FROM users ORDER BY id`

	deleteUserQuery = `DELETE FROM users WHERE id = $1`

	storeRefreshTokenQuery = `UPDATE users SET refresh_token = $2 WHERE id = $1`

	// The WHERE clause pins both the token and its version, so of two
	// concurrent exchanges of the same token exactly one wins.
	rotateRefreshTokenQuery = `UPDATE users
SET refresh_token = $4, token_version = token_version + 1
WHERE id = $1 AND refresh_token = $2 AND token_version = $3
RETURNING id, username, login, password_hash, refresh_token, token_version, created_at`

	clearRefreshTokenQuery = `UPDATE users
SET refresh_token = NULL, token_version = token_version + 1
WHERE id = $1`

	insertCategoryQuery = `INSERT INTO categories (name, user_id)
VALUES ($1, $2)
RETURNING id, name, user_id, created_at`

	selectCategoryQuery = `SELECT id, name, user_id, created_at FROM categories WHERE id = $1`

	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`

	countTransactionsByCategoryQuery = `SELECT count(*) FROM transactions
WHERE category_id = $1 AND is_deleted = false`

	insertAccountQuery = `INSERT INTO accounts (name, balance, user_id)
VALUES ($1, $2, $3)
RETURNING id, name, balance, user_id, created_at`

	selectAccountQuery = `SELECT id, name, balance, user_id, created_at FROM accounts WHERE id = $1`

	deleteAccountQuery = `DELETE FROM accounts WHERE id = $1`

	insertTransactionQuery = `INSERT INTO transactions (title, amount, user_id, category_id, account_id, done_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, title, amount, user_id, category_id, account_id, done_at, updated_at, is_deleted, created_at`

	selectTransactionQuery = `SELECT id, title, amount, user_id, category_id, account_id, done_at, updated_at, is_deleted, created_at
FROM transactions WHERE id = $1 AND is_deleted = false`

	selectTransactionAnyQuery = `SELECT id, title, amount, user_id, category_id, account_id, done_at, updated_at, is_deleted, created_at
FROM transactions WHERE id = $1`

	softDeleteTransactionQuery = `UPDATE transactions
SET is_deleted = true, updated_at = now()
WHERE id = $1 AND is_deleted = false`

	// The change feed includes soft-deleted rows on purpose: a syncing
	// client learns about deletions by seeing the id and then failing to
	// fetch the row.
	updatedTransactionIDsQuery = `SELECT id FROM transactions
WHERE user_id = $1 AND updated_at >= $2
ORDER BY updated_at, id`

	insertGoalQuery = `INSERT INTO goals (user_id, account_id, target_amount, deadline)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, account_id, target_amount, deadline, is_completed, created_at`

	selectGoalQuery = `SELECT id, user_id, account_id, target_amount, deadline, is_completed, created_at
FROM goals WHERE id = $1`

	deleteGoalQuery = `DELETE FROM goals WHERE id = $1`

	setGoalCompletionQuery = `UPDATE goals SET is_completed = $2 WHERE id = $1
RETURNING id, user_id, account_id, target_amount, deadline, is_completed, created_at`

	insertReminderQuery = `INSERT INTO reminders (user_id, title, amount, date, recurrence_seconds)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, title, amount, date, recurrence_seconds, is_active, created_at`

	selectReminderQuery = `SELECT id, user_id, title, amount, date, recurrence_seconds, is_active, created_at
FROM reminders WHERE id = $1`

	deleteReminderQuery = `DELETE FROM reminders WHERE id = $1`

	setReminderActiveQuery = `UPDATE reminders SET is_active = $2 WHERE id = $1
RETURNING id, user_id, title, amount, date, recurrence_seconds, is_active, created_at`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListCategoriesQuery(userID int64, search string, limit int) (string, []any, error) {
	builder := psql.
		Select("id", "name", "user_id", "created_at").
		From("categories").
		Where(sq.Or{sq.Eq{"user_id": userID}, sq.Eq{"user_id": nil}})
	if search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + search + "%"})
	}
	builder = builder.OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildListAccountsQuery(userID int64, search string, limit int) (string, []any, error) {
	builder := psql.
		Select("id", "name", "balance", "user_id", "created_at").
		From("accounts").
		Where(sq.Eq{"user_id": userID})
	if search != "" {
		builder = builder.Where(sq.ILike{"name": "%" + search + "%"})
	}
	builder = builder.OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func transactionPageBase(userID int64, search string) sq.And {
	conditions := sq.And{
		sq.Eq{"user_id": userID},
		sq.Eq{"is_deleted": false},
	}
	if search != "" {
		conditions = append(conditions, sq.ILike{"title": "%" + search + "%"})
	}

	return conditions
}

func buildTransactionPageQuery(userID int64, search string, query models.TransactionPageQuery) (string, []any, error) {
	return psql.
		Select("id", "title", "amount", "user_id", "category_id", "account_id",
			"done_at", "updated_at", "is_deleted", "created_at").
		From("transactions").
		Where(transactionPageBase(userID, search)).
		OrderBy(query.SortBy + " " + query.SortOrder).
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset)).
		ToSql()
}

func buildTransactionCountQuery(userID int64, search string) (string, []any, error) {
	return psql.
		Select("count(*)").
		From("transactions").
		Where(transactionPageBase(userID, search)).
		ToSql()
}

func buildFilterTransactionIDsQuery(userID int64, filter models.TransactionFilter) (string, []any, error) {
	builder := psql.
		Select("id").
		From("transactions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_deleted": false})
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"title": "%" + filter.Search + "%"})
	}
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.AccountID != nil {
		builder = builder.Where(sq.Eq{"account_id": *filter.AccountID})
	}
	if filter.FromDate != nil {
		builder = builder.Where(sq.GtOrEq{"done_at": *filter.FromDate})
	}
	if filter.ToDate != nil {
		builder = builder.Where(sq.LtOrEq{"done_at": *filter.ToDate})
	}
	if filter.MinAmount != nil {
		builder = builder.Where(sq.GtOrEq{"amount": *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		builder = builder.Where(sq.LtOrEq{"amount": *filter.MaxAmount})
	}

	return builder.OrderBy("id").ToSql()
}

func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, login, password_hash, refresh_token, token_version, created_at").
		ToSql()
}

func buildUpdateCategoryQuery(id int64, update models.CategoryUpdate) (string, []any, error) {
	builder := psql.Update("categories")
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, user_id, created_at").
		ToSql()
}

func buildUpdateAccountQuery(id int64, update models.AccountUpdate) (string, []any, error) {
	builder := psql.Update("accounts")
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Balance != nil {
		builder = builder.Set("balance", *update.Balance)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, balance, user_id, created_at").
		ToSql()
}

func buildUpdateTransactionQuery(id int64, update models.TransactionUpdate) (string, []any, error) {
	// updated_at is stamped unconditionally so that even a no-field update
	// is observable through the change feed.
	builder := psql.Update("transactions").Set("updated_at", sq.Expr("now()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.CategoryID != nil {
		builder = builder.Set("category_id", *update.CategoryID)
	}
	if update.AccountID != nil {
		builder = builder.Set("account_id", *update.AccountID)
	}
	if update.DoneAt != nil {
		builder = builder.Set("done_at", *update.DoneAt)
	}

	return builder.
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("RETURNING id, title, amount, user_id, category_id, account_id, done_at, updated_at, is_deleted, created_at").
		ToSql()
}

func buildUpdateGoalQuery(id int64, update models.GoalUpdate) (string, []any, error) {
	builder := psql.Update("goals")
	if update.AccountID != nil {
		builder = builder.Set("account_id", *update.AccountID)
	}
	if update.TargetAmount != nil {
		builder = builder.Set("target_amount", *update.TargetAmount)
	}
	if update.Deadline != nil {
		builder = builder.Set("deadline", *update.Deadline)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, user_id, account_id, target_amount, deadline, is_completed, created_at").
		ToSql()
}

func buildUpdateReminderQuery(id int64, update models.ReminderUpdate) (string, []any, error) {
	builder := psql.Update("reminders")
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}
	if update.Recurrence != nil {
		builder = builder.Set("recurrence_seconds", *update.Recurrence)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, user_id, title, amount, date, recurrence_seconds, is_active, created_at").
		ToSql()
}

func buildListGoalsQuery(userID int64, completed *bool, limit int) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "account_id", "target_amount", "deadline", "is_completed", "created_at").
		From("goals").
		Where(sq.Eq{"user_id": userID})
	if completed != nil {
		builder = builder.Where(sq.Eq{"is_completed": *completed})
	}
	builder = builder.OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildListRemindersQuery(userID int64, active *bool, limit int) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "title", "amount", "date", "recurrence_seconds", "is_active", "created_at").
		From("reminders").
		Where(sq.Eq{"user_id": userID})
	if active != nil {
		builder = builder.Where(sq.Eq{"is_active": *active})
	}
	builder = builder.OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}
