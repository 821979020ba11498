package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
)

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository returns a PostgreSQL-backed AccountRepository.
func NewAccountRepository(db *DB, log *logger.Logger) AccountRepository {
	return &accountRepository{db: db, logger: log}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	var created models.Account
	err := r.db.QueryRowContext(ctx, insertAccountQuery,
		account.Name, account.Balance, account.UserID,
	).Scan(&created.ID, &created.Name, &created.Balance, &created.UserID, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "CreateAccount").Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *accountRepository) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	var account models.Account
	err := r.db.QueryRowContext(ctx, selectAccountQuery, id).Scan(
		&account.ID, &account.Name, &account.Balance, &account.UserID, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "GetAccount").Msg("failed to query account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, userID int64, search string, limit int) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery(userID, search, limit)
	if err != nil {
		log.Err(err).Str("func", "ListAccounts").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "ListAccounts").Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		err = rows.Scan(&account.ID, &account.Name, &account.Balance, &account.UserID, &account.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, id int64, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateAccount").Msg("failed to build update query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID, &account.Name, &account.Balance, &account.UserID, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "UpdateAccount").Msg("failed to update account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccountQuery, id)
	if err != nil {
		log.Err(err).Str("func", "DeleteAccount").Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
