package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays config with environment variables. A .env file in the
// working directory is loaded first; variables already present in the
// process environment win over the file. A malformed duration panics.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	lookupString("DATABASE_DSN", &config.DatabaseDSN)
	lookupString("SECRET_KEY", &config.SecretKey)
	lookupString("PASSWORD_HASHING", &config.PasswordHashing)
	lookupString("LOG_FORMAT", &config.LogFormat)
	lookupString("LOG_LEVEL", &config.LogLevel)
	lookupString("GIN_MODE", &config.GinMode)

	lookupDuration("DB_CONNECT_TIMEOUT", &config.DBConnectTimeout)
	lookupDuration("ACCESS_TOKEN_VALIDITY", &config.AccessTokenValidityDuration)
	lookupDuration("SCAN_INTERVAL", &config.ScanInterval)
	lookupDuration("SCAN_WINDOW", &config.ScanWindow)
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
