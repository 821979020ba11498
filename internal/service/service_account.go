package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

// NewAccountService constructs an AccountService over the given
// repository.
func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{accountRepository: accountRepository, logger: logger}
}

func (a *accountService) CreateAccount(ctx context.Context, callerID int64, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Name == "" {
		return models.Account{}, ErrInvalidDataProvided
	}
	account.UserID = callerID

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("name", account.Name).Msg("account creation failed")
		return models.Account{}, fmt.Errorf("account creation failed: %w", err)
	}

	return created, nil
}

func (a *accountService) GetAccount(ctx context.Context, callerID, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.GetAccount(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("account lookup failed")
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if account.UserID != callerID {
		return models.Account{}, ErrNotAllowed
	}

	return account, nil
}

func (a *accountService) ListAccounts(ctx context.Context, callerID int64, search string, limit int) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	accounts, err := a.accountRepository.ListAccounts(ctx, callerID, search, limit)
	if err != nil {
		log.Err(err).Int64("user_id", callerID).Msg("listing accounts failed")
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}

	return accounts, nil
}

func (a *accountService) UpdateAccount(ctx context.Context, callerID, id int64, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.GetAccount(ctx, callerID, id)
	if err != nil {
		return models.Account{}, err
	}

	if update.Name == nil && update.Balance == nil {
		return account, nil
	}
	if update.Name != nil && *update.Name == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	updated, err := a.accountRepository.UpdateAccount(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("account update failed")
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}

	return updated, nil
}

func (a *accountService) DeleteAccount(ctx context.Context, callerID, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := a.GetAccount(ctx, callerID, id); err != nil {
		return err
	}

	if err := a.accountRepository.DeleteAccount(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}
