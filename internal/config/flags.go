package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "15m", "1h")
//	-refresh-token-duration refresh token lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

// parseFlags parses the given argument list on a fresh flag set, so tests
// can feed argument slices without touching global flag state.
func parseFlags(args []string) *StructuredConfig {
	flagSet := flag.NewFlagSet("fintrack", flag.ContinueOnError)

	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var accessTokenDuration time.Duration
	var refreshTokenDuration time.Duration
	var requestTimeout time.Duration

	flagSet.StringVar(&serverAddress, "a", "", "Net address host:port")
	flagSet.StringVar(&databaseDSN, "d", "", "Database DSN")
	flagSet.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flagSet.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flagSet.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flagSet.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flagSet.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 15m, 1h)")
	flagSet.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 168h)")
	flagSet.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	// Unknown flags are ignored rather than fatal so that test binaries can
	// pass their own arguments.
	_ = flagSet.Parse(args)

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
