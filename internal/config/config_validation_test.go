package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:         "secret",
			TokenIssuer:          "fintrack",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 168 * time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/fintrack"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

func Test_validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid config", mutate: func(cfg *StructuredConfig) {}, wantErr: nil},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "empty issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero access token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.AccessTokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero refresh token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.RefreshTokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "empty server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
