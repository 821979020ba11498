package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &DB{DB: mockDB, logger: logger.Nop()}, mock
}

func userColumns() []string {
	return []string{"id", "username", "login", "password_hash", "refresh_token", "token_version", "created_at"}
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "alice@pay.me", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "alice", "alice@pay.me", "$2a$10$hash", nil, 0, now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Username:     "alice",
		Login:        "alice@pay.me",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "alice@pay.me", created.Login)
	assert.Nil(t, created.RefreshToken)
	assert.Zero(t, created.TokenVersion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateLogin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "alice@pay.me", "$2a$10$hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateUser(context.Background(), models.User{
		Username:     "alice",
		Login:        "alice@pay.me",
		PasswordHash: "$2a$10$hash",
	})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByLogin_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_RotateRefreshToken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	t.Run("success bumps version and swaps token", func(t *testing.T) {
		next := "next-token"
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
			WithArgs(int64(1), "old-token", int64(4), next).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(1, "alice", "alice@pay.me", "hash", next, 5, time.Now()))

		user, err := repo.RotateRefreshToken(context.Background(), 1, "old-token", 4, next)
		require.NoError(t, err)

		assert.Equal(t, int64(5), user.TokenVersion)
		require.NotNil(t, user.RefreshToken)
		assert.Equal(t, next, *user.RefreshToken)
	})

	t.Run("stale token loses the race", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
			WithArgs(int64(1), "consumed-token", int64(4), "next-token").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.RotateRefreshToken(context.Background(), 1, "consumed-token", 4, "next-token")
		assert.ErrorIs(t, err, ErrRefreshTokenMismatch)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ClearRefreshToken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	t.Run("invalidates session", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET refresh_token = NULL, token_version = token_version + 1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ClearRefreshToken(context.Background(), 1))
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET refresh_token = NULL, token_version = token_version + 1")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.ClearRefreshToken(context.Background(), 99), ErrNoUserWasFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteUser(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
