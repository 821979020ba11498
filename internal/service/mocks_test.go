package service

import (
	"context"
	"time"

	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

// Hand-written repository mocks. Each embeds the interface so only the
// methods a test actually needs have to be provided; calling anything else
// panics and flags the test.

type userRepoMock struct {
	store.UserRepository

	createUser         func(ctx context.Context, user models.User) (models.User, error)
	findUserByLogin    func(ctx context.Context, login string) (models.User, error)
	findUserByID       func(ctx context.Context, id int64) (models.User, error)
	storeRefreshToken  func(ctx context.Context, userID int64, token string) error
	rotateRefreshToken func(ctx context.Context, userID int64, presented string, presentedVersion int64, next string) (models.User, error)
	clearRefreshToken  func(ctx context.Context, userID int64) error
}

func (m *userRepoMock) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *userRepoMock) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.findUserByLogin(ctx, login)
}

func (m *userRepoMock) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findUserByID(ctx, id)
}

func (m *userRepoMock) StoreRefreshToken(ctx context.Context, userID int64, token string) error {
	return m.storeRefreshToken(ctx, userID, token)
}

func (m *userRepoMock) RotateRefreshToken(ctx context.Context, userID int64, presented string, presentedVersion int64, next string) (models.User, error) {
	return m.rotateRefreshToken(ctx, userID, presented, presentedVersion, next)
}

func (m *userRepoMock) ClearRefreshToken(ctx context.Context, userID int64) error {
	return m.clearRefreshToken(ctx, userID)
}

type categoryRepoMock struct {
	store.CategoryRepository

	getCategory                 func(ctx context.Context, id int64) (models.Category, error)
	deleteCategory              func(ctx context.Context, id int64) error
	countTransactionsByCategory func(ctx context.Context, categoryID int64) (int64, error)
}

func (m *categoryRepoMock) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return m.getCategory(ctx, id)
}

func (m *categoryRepoMock) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteCategory(ctx, id)
}

func (m *categoryRepoMock) CountTransactionsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return m.countTransactionsByCategory(ctx, categoryID)
}

type accountRepoMock struct {
	store.AccountRepository

	getAccount func(ctx context.Context, id int64) (models.Account, error)
}

func (m *accountRepoMock) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	return m.getAccount(ctx, id)
}

type transactionRepoMock struct {
	store.TransactionRepository

	createTransaction              func(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	getTransaction                 func(ctx context.Context, id int64) (models.Transaction, error)
	getTransactionIncludingDeleted func(ctx context.Context, id int64) (models.Transaction, error)
	listTransactionsPage           func(ctx context.Context, userID int64, search string, query models.TransactionPageQuery) ([]models.Transaction, int64, error)
	softDeleteTransaction          func(ctx context.Context, id int64) error
	filterTransactionIDs           func(ctx context.Context, userID int64, filter models.TransactionFilter) ([]int64, error)
	updatedTransactionIDs          func(ctx context.Context, userID int64, since time.Time) ([]int64, error)
}

func (m *transactionRepoMock) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	return m.createTransaction(ctx, transaction)
}

func (m *transactionRepoMock) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	return m.getTransaction(ctx, id)
}

func (m *transactionRepoMock) GetTransactionIncludingDeleted(ctx context.Context, id int64) (models.Transaction, error) {
	return m.getTransactionIncludingDeleted(ctx, id)
}

func (m *transactionRepoMock) ListTransactionsPage(ctx context.Context, userID int64, search string, query models.TransactionPageQuery) ([]models.Transaction, int64, error) {
	return m.listTransactionsPage(ctx, userID, search, query)
}

func (m *transactionRepoMock) SoftDeleteTransaction(ctx context.Context, id int64) error {
	return m.softDeleteTransaction(ctx, id)
}

func (m *transactionRepoMock) FilterTransactionIDs(ctx context.Context, userID int64, filter models.TransactionFilter) ([]int64, error) {
	return m.filterTransactionIDs(ctx, userID, filter)
}

func (m *transactionRepoMock) UpdatedTransactionIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error) {
	return m.updatedTransactionIDs(ctx, userID, since)
}

type goalRepoMock struct {
	store.GoalRepository

	getGoal           func(ctx context.Context, id int64) (models.Goal, error)
	setGoalCompletion func(ctx context.Context, id int64, completed bool) (models.Goal, error)
}

func (m *goalRepoMock) GetGoal(ctx context.Context, id int64) (models.Goal, error) {
	return m.getGoal(ctx, id)
}

func (m *goalRepoMock) SetGoalCompletion(ctx context.Context, id int64, completed bool) (models.Goal, error) {
	return m.setGoalCompletion(ctx, id, completed)
}
