package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/service"
	"github.com/fintrack/fintrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	transactions := &transactionServiceMock{
		listTransactions: func(_ context.Context, callerID int64, search string, query models.TransactionPageQuery) (models.TransactionPage, error) {
			assert.Equal(t, int64(3), callerID)
			assert.Equal(t, "rent", search)
			assert.Equal(t, 10, query.Limit)
			assert.Equal(t, models.SortByAmount, query.SortBy)
			assert.Equal(t, models.SortOrderDesc, query.SortOrder)

			return models.TransactionPage{
				Items: []models.Transaction{{ID: 1, Title: "rent"}},
				Pagination: models.Pagination{
					Total: 1, Limit: 10, Offset: 0, HasNext: false,
				},
			}, nil
		},
	}
	server := newTestServer(t, &service.Services{
		AuthService:        allowAllAuth(3),
		TransactionService: transactions,
	})

	response := doRequest(t, server, http.MethodGet,
		"/api/transactions?limit=10&sort_by=amount&sort_order=desc&search=rent", "", "token")
	require.Equal(t, http.StatusOK, response.StatusCode)

	var page models.TransactionPage
	require.NoError(t, json.NewDecoder(response.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "rent", page.Items[0].Title)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestListTransactions_InvalidSort(t *testing.T) {
	transactions := &transactionServiceMock{
		listTransactions: func(_ context.Context, _ int64, _ string, _ models.TransactionPageQuery) (models.TransactionPage, error) {
			return models.TransactionPage{}, service.ErrInvalidSortParameters
		},
	}
	server := newTestServer(t, &service.Services{
		AuthService:        allowAllAuth(3),
		TransactionService: transactions,
	})

	response := doRequest(t, server, http.MethodGet, "/api/transactions?sort_by=user_id", "", "token")
	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		transactions := &transactionServiceMock{
			deleteTransaction: func(_ context.Context, callerID, id int64) error {
				assert.Equal(t, int64(3), callerID)
				assert.Equal(t, int64(7), id)
				return nil
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: transactions,
		})

		response := doRequest(t, server, http.MethodDelete, "/api/transactions/7", "", "token")
		assert.Equal(t, http.StatusNoContent, response.StatusCode)
	})

	t.Run("foreign transaction forbidden", func(t *testing.T) {
		transactions := &transactionServiceMock{
			deleteTransaction: func(_ context.Context, _, _ int64) error {
				return service.ErrNotAllowed
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: transactions,
		})

		response := doRequest(t, server, http.MethodDelete, "/api/transactions/7", "", "token")
		assert.Equal(t, http.StatusForbidden, response.StatusCode)
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: &transactionServiceMock{},
		})

		response := doRequest(t, server, http.MethodDelete, "/api/transactions/abc", "", "token")
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}

func TestFilterTransactions(t *testing.T) {
	t.Run("predicates parsed", func(t *testing.T) {
		transactions := &transactionServiceMock{
			filterTransactionIDs: func(_ context.Context, _ int64, filter models.TransactionFilter) ([]int64, error) {
				require.NotNil(t, filter.CategoryID)
				assert.Equal(t, int64(2), *filter.CategoryID)
				require.NotNil(t, filter.MinAmount)
				assert.Equal(t, 1.5, *filter.MinAmount)
				require.NotNil(t, filter.FromDate)
				assert.Equal(t, 2026, filter.FromDate.Year())
				return []int64{1, 4, 9}, nil
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: transactions,
		})

		response := doRequest(t, server, http.MethodGet,
			"/api/transactions/filter?category_id=2&min_amount=1.5&from_date=2026-01-01", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var ids []int64
		require.NoError(t, json.NewDecoder(response.Body).Decode(&ids))
		assert.Equal(t, []int64{1, 4, 9}, ids)
	})

	t.Run("malformed predicate", func(t *testing.T) {
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: &transactionServiceMock{},
		})

		response := doRequest(t, server, http.MethodGet,
			"/api/transactions/filter?category_id=two", "", "token")
		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
	})

	t.Run("foreign category forbidden", func(t *testing.T) {
		transactions := &transactionServiceMock{
			filterTransactionIDs: func(_ context.Context, _ int64, _ models.TransactionFilter) ([]int64, error) {
				return nil, service.ErrNotAllowed
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: transactions,
		})

		response := doRequest(t, server, http.MethodGet,
			"/api/transactions/filter?category_id=2", "", "token")
		assert.Equal(t, http.StatusForbidden, response.StatusCode)
	})
}

func TestUpdatedTransactions(t *testing.T) {
	t.Run("feed returned", func(t *testing.T) {
		transactions := &transactionServiceMock{
			updatedTransactionIDs: func(_ context.Context, _ int64, since time.Time) ([]int64, error) {
				assert.Equal(t, int64(1756000000), since.Unix())
				return []int64{4, 9, 2}, nil
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: transactions,
		})

		response := doRequest(t, server, http.MethodGet, "/api/transactions/updated?updated_since=1756000000", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var ids []int64
		require.NoError(t, json.NewDecoder(response.Body).Decode(&ids))
		assert.Equal(t, []int64{4, 9, 2}, ids)
	})

	t.Run("malformed ts yields empty feed", func(t *testing.T) {
		server := newTestServer(t, &service.Services{
			AuthService:        allowAllAuth(3),
			TransactionService: &transactionServiceMock{},
		})

		response := doRequest(t, server, http.MethodGet, "/api/transactions/updated?updated_since=yesterday", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var ids []int64
		require.NoError(t, json.NewDecoder(response.Body).Decode(&ids))
		assert.Empty(t, ids)
	})
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("delete blocked while in use", func(t *testing.T) {
		categories := &categoryServiceMock{
			deleteCategory: func(_ context.Context, _, _ int64) error {
				return service.ErrCategoryInUse
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:     allowAllAuth(3),
			CategoryService: categories,
		})

		response := doRequest(t, server, http.MethodDelete, "/api/categories/5", "", "token")
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("system category visible", func(t *testing.T) {
		categories := &categoryServiceMock{
			getCategory: func(_ context.Context, _, id int64) (models.Category, error) {
				return models.Category{ID: id, Name: "groceries"}, nil
			},
		}
		server := newTestServer(t, &service.Services{
			AuthService:     allowAllAuth(3),
			CategoryService: categories,
		})

		response := doRequest(t, server, http.MethodGet, "/api/categories/5", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var category models.Category
		require.NoError(t, json.NewDecoder(response.Body).Decode(&category))
		assert.Nil(t, category.UserID)
	})
}

func TestGoalToggles(t *testing.T) {
	goals := &goalServiceMock{
		setGoalCompletion: func(_ context.Context, _, id int64, completed bool) (models.Goal, error) {
			return models.Goal{ID: id, IsCompleted: completed}, nil
		},
	}
	server := newTestServer(t, &service.Services{
		AuthService: allowAllAuth(3),
		GoalService: goals,
	})

	t.Run("complete", func(t *testing.T) {
		response := doRequest(t, server, http.MethodPatch, "/api/goals/4/complete", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var goal models.Goal
		require.NoError(t, json.NewDecoder(response.Body).Decode(&goal))
		assert.True(t, goal.IsCompleted)
	})

	t.Run("incomplete", func(t *testing.T) {
		response := doRequest(t, server, http.MethodPatch, "/api/goals/4/incomplete", "", "token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		var goal models.Goal
		require.NoError(t, json.NewDecoder(response.Body).Decode(&goal))
		assert.False(t, goal.IsCompleted)
	})
}
