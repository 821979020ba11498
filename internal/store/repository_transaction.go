// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
)

type transactionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTransactionRepository returns a PostgreSQL-backed TransactionRepository.
func NewTransactionRepository(db *DB, log *logger.Logger) TransactionRepository {
	return &transactionRepository{db: db, logger: log}
}

func scanTransaction(row interface{ Scan(...any) error }, t *models.Transaction) error {
	return row.Scan(
		&t.ID, &t.Title, &t.Amount, &t.UserID, &t.CategoryID, &t.AccountID,
		&t.DoneAt, &t.UpdatedAt, &t.IsDeleted, &t.CreatedAt,
	)
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var created models.Transaction
	row := r.db.QueryRowContext(ctx, insertTransactionQuery,
		transaction.Title, transaction.Amount, transaction.UserID,
		transaction.CategoryID, transaction.AccountID, transaction.DoneAt,
	)
	if err := scanTransaction(row, &created); err != nil {
		log.Err(err).Str("func", "CreateTransaction").Msg("failed to insert transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *transactionRepository) GetTransaction(ctx context.Context, id int64) (models.Transaction, error) {
	return r.getTransaction(ctx, selectTransactionQuery, id)
}

func (r *transactionRepository) GetTransactionIncludingDeleted(ctx context.Context, id int64) (models.Transaction, error) {
	return r.getTransaction(ctx, selectTransactionAnyQuery, id)
}

func (r *transactionRepository) getTransaction(ctx context.Context, query string, id int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var transaction models.Transaction
	row := r.db.QueryRowContext(ctx, query, id)
	if err := scanTransaction(row, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Str("func", "getTransaction").Msg("failed to query transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return transaction, nil
}

func (r *transactionRepository) ListTransactionsPage(ctx context.Context, userID int64, search string, query models.TransactionPageQuery) ([]models.Transaction, int64, error) {
	log := logger.FromContext(ctx)

	countSQL, countArgs, err := buildTransactionCountQuery(userID, search)
	if err != nil {
		log.Err(err).Str("func", "ListTransactionsPage").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "ListTransactionsPage").Msg("failed to count transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	pageSQL, pageArgs, err := buildTransactionPageQuery(userID, search, query)
	if err != nil {
		log.Err(err).Str("func", "ListTransactionsPage").Msg("failed to build page query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		log.Err(err).Str("func", "ListTransactionsPage").Msg("failed to query transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var transaction models.Transaction
		if err = scanTransaction(rows, &transaction); err != nil {
			log.Err(err).Str("func", "ListTransactionsPage").Msg("failed to scan transaction row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transactions = append(transactions, transaction)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateTransaction").Msg("failed to build update query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var transaction models.Transaction
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanTransaction(row, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		log.Err(err).Str("func", "UpdateTransaction").Msg("failed to update transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return transaction, nil
}

func (r *transactionRepository) SoftDeleteTransaction(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteTransactionQuery, id)
	if err != nil {
		log.Err(err).Str("func", "SoftDeleteTransaction").Msg("failed to soft-delete transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) FilterTransactionIDs(ctx context.Context, userID int64, filter models.TransactionFilter) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFilterTransactionIDsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "FilterTransactionIDs").Msg("failed to build filter query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryIDs(ctx, "FilterTransactionIDs", query, args...)
}

func (r *transactionRepository) UpdatedTransactionIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error) {
	return r.queryIDs(ctx, "UpdatedTransactionIDs", updatedTransactionIDsQuery, userID, since)
}

func (r *transactionRepository) queryIDs(ctx context.Context, funcName, query string, args ...any) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query transaction ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan transaction id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
