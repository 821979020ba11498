package store

import (
	"testing"
	"time"

	"github.com/fintrack/fintrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildListCategoriesQuery(t *testing.T) {
	t.Run("no search includes system categories", func(t *testing.T) {
		query, args, err := buildListCategoriesQuery(7, "", 0)
		require.NoError(t, err)

		assert.Contains(t, query, "user_id = $1")
		assert.Contains(t, query, "user_id IS NULL")
		assert.NotContains(t, query, "ILIKE")
		assert.NotContains(t, query, "LIMIT")
		assert.Equal(t, []any{int64(7)}, args)
	})

	t.Run("search and limit applied", func(t *testing.T) {
		query, args, err := buildListCategoriesQuery(7, "food", 10)
		require.NoError(t, err)

		assert.Contains(t, query, "ILIKE")
		assert.Contains(t, query, "LIMIT 10")
		assert.Equal(t, []any{int64(7), "%food%"}, args)
	})
}

func TestBuildTransactionPageQuery(t *testing.T) {
	query, args, err := buildTransactionPageQuery(3, "", models.TransactionPageQuery{
		Limit:     20,
		Offset:    40,
		SortBy:    models.SortByAmount,
		SortOrder: models.SortOrderDesc,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY amount desc")
	assert.Contains(t, query, "LIMIT 20")
	assert.Contains(t, query, "OFFSET 40")
	assert.Contains(t, query, "is_deleted = $2")
	assert.Equal(t, []any{int64(3), false}, args)
}

func TestBuildTransactionCountQuery(t *testing.T) {
	query, args, err := buildTransactionCountQuery(3, "rent")
	require.NoError(t, err)

	assert.Contains(t, query, "count(*)")
	assert.Contains(t, query, "ILIKE")
	assert.Equal(t, []any{int64(3), false, "%rent%"}, args)
}

func TestBuildFilterTransactionIDsQuery(t *testing.T) {
	t.Run("no predicates", func(t *testing.T) {
		query, args, err := buildFilterTransactionIDsQuery(5, models.TransactionFilter{})
		require.NoError(t, err)

		assert.Contains(t, query, "ORDER BY id")
		assert.Equal(t, []any{int64(5), false}, args)
	})

	t.Run("all predicates", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		query, args, err := buildFilterTransactionIDsQuery(5, models.TransactionFilter{
			Search:     "coffee",
			CategoryID: ptr(int64(2)),
			AccountID:  ptr(int64(4)),
			FromDate:   &from,
			ToDate:     &to,
			MinAmount:  ptr(1.5),
			MaxAmount:  ptr(99.9),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "title ILIKE")
		assert.Contains(t, query, "category_id =")
		assert.Contains(t, query, "account_id =")
		assert.Contains(t, query, "done_at >=")
		assert.Contains(t, query, "done_at <=")
		assert.Contains(t, query, "amount >=")
		assert.Contains(t, query, "amount <=")
		assert.Len(t, args, 9)
	})
}

func TestBuildUpdateTransactionQuery(t *testing.T) {
	t.Run("empty update still stamps updated_at", func(t *testing.T) {
		query, _, err := buildUpdateTransactionQuery(11, models.TransactionUpdate{})
		require.NoError(t, err)

		assert.Contains(t, query, "updated_at = now()")
		assert.Contains(t, query, "RETURNING")
	})

	t.Run("provided fields added to SET", func(t *testing.T) {
		query, args, err := buildUpdateTransactionQuery(11, models.TransactionUpdate{
			Title:  ptr("groceries"),
			Amount: ptr(42.0),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "title = $1")
		assert.Contains(t, query, "amount = $2")
		assert.Contains(t, args, "groceries")
		assert.Contains(t, args, 42.0)
	})
}

func TestBuildUpdateUserQuery_NoFields(t *testing.T) {
	// squirrel refuses an UPDATE with an empty SET list; callers
	// short-circuit empty updates before reaching the builder
	_, _, err := buildUpdateUserQuery(1, models.UserUpdate{})
	assert.Error(t, err)
}

func TestBuildListRemindersQuery(t *testing.T) {
	query, args, err := buildListRemindersQuery(9, ptr(true), 5)
	require.NoError(t, err)

	assert.Contains(t, query, "is_active = $2")
	assert.Contains(t, query, "LIMIT 5")
	assert.Equal(t, []any{int64(9), true}, args)
}
