package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/deathline/internal/flagx"
	"github.com/dmitrijs2005/deathline/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Duration
// fields accept both "30m" style strings and integer nanoseconds. Fields that
// are absent from the file leave the corresponding Config value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	DBConnectTimeout            *timex.Duration `json:"db_connect_timeout"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	ScanInterval                *timex.Duration `json:"scan_interval"`
	ScanWindow                  *timex.Duration `json:"scan_window"`
	PasswordHashing             *string         `json:"password_hashing"`
	LogFormat                   *string         `json:"log_format"`
	LogLevel                    *string         `json:"log_level"`
	GinMode                     *string         `json:"gin_mode"`
}

// parseJson loads the file named by -c/-config into config. Nothing happens
// when no file is given. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.PasswordHashing, c.PasswordHashing)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.GinMode, c.GinMode)

	if c.DBConnectTimeout != nil {
		config.DBConnectTimeout = c.DBConnectTimeout.Duration
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ScanInterval != nil {
		config.ScanInterval = c.ScanInterval.Duration
	}
	if c.ScanWindow != nil {
		config.ScanWindow = c.ScanWindow.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
