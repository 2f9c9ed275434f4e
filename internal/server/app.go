// Package server initializes and runs the deadline server: it connects to
// PostgreSQL, applies migrations, serves the HTTP API and runs the deadline
// scanner until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cenk/backoff"
	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/config"
	"github.com/dmitrijs2005/deathline/internal/server/httpserver"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/deathline/internal/server/scanner"
	"github.com/dmitrijs2005/deathline/internal/server/services"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpserver.HTTPServer
	scanner    *scanner.Scanner
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if c.DatabaseDSN == config.InMemoryDSN {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")
		return newApp(ctx, c, logger, nil, repomanager.NewInMemoryRepositoryManager())
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := waitForDB(ctx, db, c.DBConnectTimeout, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	passwords, err := services.NewPasswordHasher(c.PasswordHashing)
	if err != nil {
		return nil, err
	}

	us := services.NewAuthService(db, rm, passwords, c, logger)
	ds := services.NewDeadlineService(db, rm)

	gin.SetMode(c.GinMode)
	hs := httpserver.NewHTTPServer(c.EndpointAddrHTTP, logger, us, ds, c.SecretKey)

	sc := scanner.New(rm.Deadlines(db), scanner.NewLogNotifier(logger), c.ScanInterval, c.ScanWindow, logger)

	return &App{config: c, logger: logger, db: db, httpServer: hs, scanner: sc}, nil
}

// waitForDB pings the database with exponential backoff until it answers or
// timeout elapses.
func waitForDB(ctx context.Context, db *sql.DB, timeout time.Duration, logger logging.Logger) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = timeout

	return backoff.Retry(func() error {
		err := db.PingContext(ctx)
		if err != nil {
			logger.Warn(ctx, "database not ready", "error", err.Error())
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or a termination signal arrives, then
// waits for the HTTP server and scanner to stop and closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.scanner.Run(ctx)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}

	app.logger.Info(ctx, "App stopped")
}
