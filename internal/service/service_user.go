package service

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// UpdateUser patches the caller's own profile. A provided password is
// hashed here so the repository only ever sees the derived value. An
// update with no fields is a read.
func (u *userService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Username == nil && update.Password == nil {
		return u.GetUser(ctx, callerID)
	}
	if update.Username != nil && *update.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "UpdateUser").Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = &hash
	}

	user, err := u.userRepository.UpdateUser(ctx, callerID, update)
	if err != nil {
		log.Err(err).Int64("id", callerID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}

func (u *userService) DeleteUser(ctx context.Context, callerID int64) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, callerID); err != nil {
		log.Err(err).Int64("id", callerID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
