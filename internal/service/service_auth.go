// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/store"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT pair
// lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify both token
	// kinds.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// accessTokenDuration controls how long an access token remains valid.
	accessTokenDuration time.Duration

	// refreshTokenDuration controls how long a refresh token remains valid
	// before its next rotation.
	refreshTokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, username string, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("func", "RegisterUser").Msg("empty login or password")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Login:        credentials.Login,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and opens a session.
//
// On success the issued refresh token becomes the user's single live one,
// replacing whatever was stored before.
//
// Returns a token pair or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongPassword if the login is unknown or the password does not
//     match the stored hash. The two cases are indistinguishable to the
//     caller so login existence cannot be probed.
//   - A wrapped storage error if the lookup fails for any other reason.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("func", "Login").Msg("empty login or password")
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrWrongPassword
		}
		return models.TokenPair{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.VerifyPassword(credentials.Password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.TokenPair{}, ErrWrongPassword
	}

	return a.issueTokenPair(ctx, foundUser.ID, foundUser.TokenVersion)
}

// Refresh exchanges a refresh token for a fresh pair.
//
// The presented token must be the one stored on the user row and carry the
// current token version; the exchange is a single conditional update that
// bumps the version, so of two concurrent exchanges of the same token
// exactly one succeeds. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}
	if token.TokenType != models.TokenTypeRefresh {
		log.Error().Str("func", "Refresh").Str("type", token.TokenType).Msg("access token presented as refresh token")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	nextRefresh, err := utils.GenerateRefreshToken(a.tokenIssuer, userID, token.TokenVersion+1, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	rotated, err := a.userRepository.RotateRefreshToken(ctx, userID, refreshToken, token.TokenVersion, nextRefresh.SignedString)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("refresh token rotation failed")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	accessToken, err := utils.GenerateAccessToken(a.tokenIssuer, rotated.ID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: nextRefresh.SignedString,
		TokenType:    "Bearer",
	}, nil
}

// Logout closes the user's session. Clearing the stored token and bumping
// the version invalidates every refresh token issued so far.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.ClearRefreshToken(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to clear refresh token")
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw access token string.
//
// Any validation failure (expired, wrong issuer, wrong type, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if token.TokenType != models.TokenTypeAccess {
		// refresh tokens never authenticate API calls
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal resolves an access token to the ID of an existing user.
//
// Beyond ParseToken's validation it checks the user row is still present,
// so access tokens die together with the account they were issued for.
func (a *authService) ResolvePrincipal(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := token.GetUserID()
	if err != nil {
		log.Err(err).Str("func", "ResolvePrincipal").Msg("token carries no subject")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	if _, err = a.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("token references a missing user")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}

func (a *authService) issueTokenPair(ctx context.Context, userID, tokenVersion int64) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	accessToken, err := utils.GenerateAccessToken(a.tokenIssuer, userID, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateRefreshToken(a.tokenIssuer, userID, tokenVersion, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.StoreRefreshToken(ctx, userID, refreshToken.SignedString); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to store refresh token")
		return models.TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
		TokenType:    "Bearer",
	}, nil
}
