// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

// Paging bounds for the transaction list.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var sortColumns = map[string]struct{}{
	models.SortByID:     {},
	models.SortByTitle:  {},
	models.SortByAmount: {},
	models.SortByDoneAt: {},
}

type transactionService struct {
	transactionRepository store.TransactionRepository
	categoryRepository    store.CategoryRepository
	accountRepository     store.AccountRepository
	logger                *logger.Logger
}

// NewTransactionService constructs a TransactionService. The category and
// account repositories are needed to validate references on create and
// update.
func NewTransactionService(
	transactionRepository store.TransactionRepository,
	categoryRepository store.CategoryRepository,
	accountRepository store.AccountRepository,
	logger *logger.Logger,
) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		categoryRepository:    categoryRepository,
		accountRepository:     accountRepository,
		logger:                logger,
	}
}

// CreateTransaction validates and persists a new transaction. The
// referenced category must be visible to the caller (system or owned) and
// the referenced account must be owned by the caller. A zero DoneAt
// defaults to the current time.
func (t *transactionService) CreateTransaction(ctx context.Context, callerID int64, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if transaction.Title == "" {
		return models.Transaction{}, ErrInvalidDataProvided
	}
	if err := t.checkCategoryRef(ctx, callerID, transaction.CategoryID); err != nil {
		return models.Transaction{}, err
	}
	if err := t.checkAccountRef(ctx, callerID, transaction.AccountID); err != nil {
		return models.Transaction{}, err
	}

	transaction.UserID = callerID
	if transaction.DoneAt.IsZero() {
		transaction.DoneAt = time.Now()
	}

	created, err := t.transactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		log.Err(err).Str("title", transaction.Title).Msg("transaction creation failed")
		return models.Transaction{}, fmt.Errorf("transaction creation failed: %w", err)
	}

	return created, nil
}

func (t *transactionService) GetTransaction(ctx context.Context, callerID, id int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	transaction, err := t.transactionRepository.GetTransaction(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("transaction lookup failed")
		return models.Transaction{}, fmt.Errorf("transaction lookup failed: %w", err)
	}
	if transaction.UserID != callerID {
		return models.Transaction{}, ErrNotAllowed
	}

	return transaction, nil
}

// ListTransactions returns one page of the caller's transactions plus
// pagination metadata. Sort parameters default to (id, asc); anything
// outside the whitelist fails with ErrInvalidSortParameters rather than
// silently falling back.
func (t *transactionService) ListTransactions(ctx context.Context, callerID int64, search string, query models.TransactionPageQuery) (models.TransactionPage, error) {
	log := logger.FromContext(ctx)

	if query.SortBy == "" {
		query.SortBy = models.SortByID
	}
	if query.SortOrder == "" {
		query.SortOrder = models.SortOrderAsc
	}
	if _, ok := sortColumns[query.SortBy]; !ok {
		return models.TransactionPage{}, fmt.Errorf("%w: sort_by %q", ErrInvalidSortParameters, query.SortBy)
	}
	if query.SortOrder != models.SortOrderAsc && query.SortOrder != models.SortOrderDesc {
		return models.TransactionPage{}, fmt.Errorf("%w: order %q", ErrInvalidSortParameters, query.SortOrder)
	}

	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	if query.Limit > maxPageLimit {
		query.Limit = maxPageLimit
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	items, total, err := t.transactionRepository.ListTransactionsPage(ctx, callerID, search, query)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("listing transactions failed")
		return models.TransactionPage{}, fmt.Errorf("listing transactions failed: %w", err)
	}
	if items == nil {
		items = []models.Transaction{}
	}

	return models.TransactionPage{
		Items: items,
		Pagination: models.Pagination{
			Total:   total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			HasNext: int64(query.Offset+len(items)) < total,
		},
	}, nil
}

// UpdateTransaction applies a partial update to an owned transaction.
// Provided category and account references are re-validated with the same
// rules as creation. Every update stamps UpdatedAt, so the change feed
// picks it up.
func (t *transactionService) UpdateTransaction(ctx context.Context, callerID, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if _, err := t.GetTransaction(ctx, callerID, id); err != nil {
		return models.Transaction{}, err
	}

	if update.Title != nil && *update.Title == "" {
		return models.Transaction{}, ErrInvalidDataProvided
	}
	if update.CategoryID != nil {
		if err := t.checkCategoryRef(ctx, callerID, *update.CategoryID); err != nil {
			return models.Transaction{}, err
		}
	}
	if update.AccountID != nil {
		if err := t.checkAccountRef(ctx, callerID, *update.AccountID); err != nil {
			return models.Transaction{}, err
		}
	}

	updated, err := t.transactionRepository.UpdateTransaction(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("transaction update failed")
		return models.Transaction{}, fmt.Errorf("transaction update failed: %w", err)
	}

	return updated, nil
}

// DeleteTransaction soft-deletes an owned transaction. Repeating the
// delete is a no-op success: the caller cannot tell a first delete from a
// second one.
func (t *transactionService) DeleteTransaction(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	transaction, err := t.transactionRepository.GetTransactionIncludingDeleted(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("transaction lookup failed")
		return fmt.Errorf("transaction lookup failed: %w", err)
	}
	if transaction.UserID != callerID {
		return ErrNotAllowed
	}
	if transaction.IsDeleted {
		return nil
	}

	if err = t.transactionRepository.SoftDeleteTransaction(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("transaction deletion failed")
		return fmt.Errorf("transaction deletion failed: %w", err)
	}

	return nil
}

// FilterTransactionIDs returns the ascending ids of the caller's
// non-deleted transactions matching every predicate of the filter. A
// category or account referenced by the filter must pass the same
// visibility rules as on creation.
func (t *transactionService) FilterTransactionIDs(ctx context.Context, callerID int64, filter models.TransactionFilter) ([]int64, error) {
	log := logger.FromContext(ctx)

	if filter.CategoryID != nil {
		if err := t.checkCategoryRef(ctx, callerID, *filter.CategoryID); err != nil {
			return nil, err
		}
	}
	if filter.AccountID != nil {
		if err := t.checkAccountRef(ctx, callerID, *filter.AccountID); err != nil {
			return nil, err
		}
	}

	ids, err := t.transactionRepository.FilterTransactionIDs(ctx, callerID, filter)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("filtering transactions failed")
		return nil, fmt.Errorf("filtering transactions failed: %w", err)
	}

	return ids, nil
}

// UpdatedTransactionIDs is the incremental-sync change feed: ids of the
// caller's rows touched at or after since, soft-deleted ones included,
// ordered by (updated_at, id).
func (t *transactionService) UpdatedTransactionIDs(ctx context.Context, callerID int64, since time.Time) ([]int64, error) {
	log := logger.FromContext(ctx)

	ids, err := t.transactionRepository.UpdatedTransactionIDs(ctx, callerID, since)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("change feed query failed")
		return nil, fmt.Errorf("change feed query failed: %w", err)
	}

	return ids, nil
}

func (t *transactionService) checkCategoryRef(ctx context.Context, callerID, categoryID int64) error {
	category, err := t.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category lookup failed: %w", err)
	}
	if !category.VisibleTo(callerID) {
		return ErrNotAllowed
	}

	return nil
}

func (t *transactionService) checkAccountRef(ctx context.Context, callerID, accountID int64) error {
	account, err := t.accountRepository.GetAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	if account.UserID != callerID {
		return ErrNotAllowed
	}

	return nil
}
