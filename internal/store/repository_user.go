// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository returns a PostgreSQL-backed UserRepository.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: log}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, insertUserQuery,
		user.Username, user.Login, user.PasswordHash,
	).Scan(
		&created.ID, &created.Username, &created.Login, &created.PasswordHash,
		&created.RefreshToken, &created.TokenVersion, &created.CreatedAt,
	)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, fmt.Errorf("%w: %s", ErrLoginAlreadyExists, user.Login)
		}
		log.Err(err).Str("func", "CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, selectUserByLoginQuery, login)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, selectUserByIDQuery, id)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Login, &user.PasswordHash,
		&user.RefreshToken, &user.TokenVersion, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "findUser").Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectAllUsersQuery)
	if err != nil {
		log.Err(err).Str("func", "ListUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID, &user.Username, &user.Login, &user.PasswordHash,
			&user.RefreshToken, &user.TokenVersion, &user.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "UpdateUser").Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Username, &user.Login, &user.PasswordHash,
		&user.RefreshToken, &user.TokenVersion, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "UpdateUser").Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		log.Err(err).Str("func", "DeleteUser").Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) StoreRefreshToken(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, storeRefreshTokenQuery, userID, token)
	if err != nil {
		log.Err(err).Str("func", "StoreRefreshToken").Msg("failed to store refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) RotateRefreshToken(ctx context.Context, userID int64, presented string, presentedVersion int64, next string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, rotateRefreshTokenQuery,
		userID, presented, presentedVersion, next,
	).Scan(
		&user.ID, &user.Username, &user.Login, &user.PasswordHash,
		&user.RefreshToken, &user.TokenVersion, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// no row matched: the presented token was already consumed or
			// invalidated
			return models.User{}, ErrRefreshTokenMismatch
		}
		log.Err(err).Str("func", "RotateRefreshToken").Msg("failed to rotate refresh token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearRefreshTokenQuery, userID)
	if err != nil {
		log.Err(err).Str("func", "ClearRefreshToken").Msg("failed to clear refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
