package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/deathline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   access token HMAC secret key
//	-t int      access token validity, minutes
//	-i int      deadline scan interval, minutes
//	-w int      deadline scan window, minutes
//	-p string   password storage mode ("plain" or "bcrypt")
//	-l string   log level
//
// Minute-valued flags are converted to time.Duration.
// Other flag sets may own the remaining arguments; they are filtered out.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"a", "d", "s", "t", "i", "w", "p", "l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	scanInterval := fs.Int("i", int(config.ScanInterval.Minutes()), "deadline scan interval (in minutes)")
	scanWindow := fs.Int("w", int(config.ScanWindow.Minutes()), "deadline scan window (in minutes)")

	fs.StringVar(&config.PasswordHashing, "p", config.PasswordHashing, "password storage: plain or bcrypt")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// minute flags only override when given, so sub-minute values from
	// JSON or the environment survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
		case "i":
			config.ScanInterval = time.Duration(*scanInterval) * time.Minute
		case "w":
			config.ScanWindow = time.Duration(*scanWindow) * time.Minute
		}
	})
}
