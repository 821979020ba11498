package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminators carried in the "type" claim. An access token
// presented to the refresh endpoint (or vice versa) is rejected regardless
// of its signature validity.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the claim set embedded in every issued JWT.
//
// It extends [jwt.RegisteredClaims] (sub, iss, exp, iat) with the token
// type discriminator and, for refresh tokens, the token-version epoch of
// the user at issuance time. A refresh token whose TokenVersion no longer
// matches the user row is stale and must be rejected.
type TokenClaims struct {
	jwt.RegisteredClaims

	// TokenType is either [TokenTypeAccess] or [TokenTypeRefresh].
	TokenType string `json:"type"`

	// TokenVersion is the user's token-version epoch at issuance.
	// Present on refresh tokens only.
	TokenVersion int64 `json:"token_version,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during parsing to avoid repeated string-to-int conversion.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the standard and application claims.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the response body of the login and refresh endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
