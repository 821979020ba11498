package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken creates a signed HMAC-SHA256 JWT access token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - type           : "access"
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateAccessToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateToken(issuer, userID, models.TokenTypeAccess, 0, tokenDuration, signKey)
}

// GenerateRefreshToken creates a signed HMAC-SHA256 JWT refresh token.
//
// In addition to the claims carried by an access token it embeds the
// user's token-version epoch at issuance time and sets type to "refresh".
// A refresh token whose embedded version no longer matches the user row is
// stale and must be rejected during the exchange.
func GenerateRefreshToken(issuer string, userID int64, tokenVersion int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	return generateToken(issuer, userID, models.TokenTypeRefresh, tokenVersion, tokenDuration, signKey)
}

func generateToken(issuer string, userID int64, tokenType string, tokenVersion int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType:    tokenType,
		TokenVersion: tokenVersion,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// The caller is responsible for checking the token type ("access" vs
// "refresh") against the flow it is serving.
//
// Returns the parsed token model with UserID, TokenType and TokenVersion
// populated, or an error if validation fails, claims are missing, or the
// subject cannot be parsed.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserID: %w", err)
	}

	return models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}
