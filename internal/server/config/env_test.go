package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("HTTP_ADDR", ":7000")
		t.Setenv("SCAN_INTERVAL", "10m")
		t.Setenv("PASSWORD_HASHING", "bcrypt")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":7000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 10*time.Minute, cfg.ScanInterval)
		assert.Equal(t, "bcrypt", cfg.PasswordHashing)
		assert.Equal(t, 30*time.Minute, cfg.ScanWindow)
	})

	t.Run("dotenv file, process env wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("SCAN_WINDOW=15m\nLOG_LEVEL=debug\nSECRET_KEY=from-file\n"), 0o600))
		chdir(t, dir)
		t.Setenv("SECRET_KEY", "from-env")
		t.Setenv("SCAN_WINDOW", "")
		t.Setenv("LOG_LEVEL", "")
		require.NoError(t, os.Unsetenv("SCAN_WINDOW"))
		require.NoError(t, os.Unsetenv("LOG_LEVEL"))

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 15*time.Minute, cfg.ScanWindow)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "from-env", cfg.SecretKey)
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("SCAN_WINDOW", "half an hour")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
