package utils

import (
	"testing"
	"time"

	"github.com/fintrack/fintrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "fintrack-test"
	testSignKey = "test-sign-key"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.TokenTypeAccess, parsed.TokenType)
	assert.Equal(t, int64(0), parsed.TokenVersion)
}

func TestGenerateRefreshToken_CarriesVersionAndType(t *testing.T) {
	token, err := GenerateRefreshToken(testIssuer, 7, 3, 24*time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, models.TokenTypeRefresh, parsed.TokenType)
	assert.Equal(t, int64(3), parsed.TokenVersion)
}

func TestGenerateAccessToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateAccessToken(tt.issuer, 1, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateAccessToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateAccessToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, "other-service")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(testIssuer, 1, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}
