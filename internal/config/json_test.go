package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "fintrack-json",
			"access_token_duration": "20m",
			"refresh_token_duration": "96h"
		},
		"storage": {"db": {"dsn": "postgres://json@localhost/fintrack"}},
		"server": {"http_address": "127.0.0.1:8081", "request_timeout": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "fintrack-json", cfg.Auth.TokenIssuer)
	assert.Equal(t, 20*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 96*time.Hour, cfg.Auth.RefreshTokenDuration)
	assert.Equal(t, "postgres://json@localhost/fintrack", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func Test_parseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func Test_parseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func Test_parseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
