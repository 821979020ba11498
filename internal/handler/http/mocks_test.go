package http

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/internal/service"
	"github.com/fintrack/fintrack/models"
)

// Hand-written service mocks. Each embeds its interface so a test only
// provides the methods it exercises.

type authServiceMock struct {
	service.AuthService

	registerUser     func(ctx context.Context, username string, credentials models.Credentials) (models.User, error)
	login            func(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	refresh          func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	logout           func(ctx context.Context, userID int64) error
	resolvePrincipal func(ctx context.Context, tokenString string) (int64, error)
}

func (m *authServiceMock) RegisterUser(ctx context.Context, username string, credentials models.Credentials) (models.User, error) {
	return m.registerUser(ctx, username, credentials)
}

func (m *authServiceMock) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	return m.login(ctx, credentials)
}

func (m *authServiceMock) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refresh(ctx, refreshToken)
}

func (m *authServiceMock) Logout(ctx context.Context, userID int64) error {
	return m.logout(ctx, userID)
}

func (m *authServiceMock) ResolvePrincipal(ctx context.Context, tokenString string) (int64, error) {
	return m.resolvePrincipal(ctx, tokenString)
}

// allowAllAuth returns an auth service that accepts any token and
// authenticates the given user id.
func allowAllAuth(userID int64) *authServiceMock {
	return &authServiceMock{
		resolvePrincipal: func(_ context.Context, _ string) (int64, error) {
			return userID, nil
		},
	}
}

type categoryServiceMock struct {
	service.CategoryService

	createCategory func(ctx context.Context, callerID int64, name string) (models.Category, error)
	getCategory    func(ctx context.Context, callerID, id int64) (models.Category, error)
	deleteCategory func(ctx context.Context, callerID, id int64) error
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, callerID int64, name string) (models.Category, error) {
	return m.createCategory(ctx, callerID, name)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, callerID, id int64) (models.Category, error) {
	return m.getCategory(ctx, callerID, id)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, callerID, id int64) error {
	return m.deleteCategory(ctx, callerID, id)
}

type transactionServiceMock struct {
	service.TransactionService

	listTransactions      func(ctx context.Context, callerID int64, search string, query models.TransactionPageQuery) (models.TransactionPage, error)
	deleteTransaction     func(ctx context.Context, callerID, id int64) error
	filterTransactionIDs  func(ctx context.Context, callerID int64, filter models.TransactionFilter) ([]int64, error)
	updatedTransactionIDs func(ctx context.Context, callerID int64, since time.Time) ([]int64, error)
}

func (m *transactionServiceMock) ListTransactions(ctx context.Context, callerID int64, search string, query models.TransactionPageQuery) (models.TransactionPage, error) {
	return m.listTransactions(ctx, callerID, search, query)
}

func (m *transactionServiceMock) DeleteTransaction(ctx context.Context, callerID, id int64) error {
	return m.deleteTransaction(ctx, callerID, id)
}

func (m *transactionServiceMock) FilterTransactionIDs(ctx context.Context, callerID int64, filter models.TransactionFilter) ([]int64, error) {
	return m.filterTransactionIDs(ctx, callerID, filter)
}

func (m *transactionServiceMock) UpdatedTransactionIDs(ctx context.Context, callerID int64, since time.Time) ([]int64, error) {
	return m.updatedTransactionIDs(ctx, callerID, since)
}

type goalServiceMock struct {
	service.GoalService

	setGoalCompletion func(ctx context.Context, callerID, id int64, completed bool) (models.Goal, error)
}

func (m *goalServiceMock) SetGoalCompletion(ctx context.Context, callerID, id int64, completed bool) (models.Goal, error) {
	return m.setGoalCompletion(ctx, callerID, id, completed)
}
