// Package httpserver exposes the deadline and auth services over HTTP using gin.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/models"
	"github.com/dmitrijs2005/deathline/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the subset of services.AuthService used by the handlers.
type UserService interface {
	Register(ctx context.Context, email, password string) (*services.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*services.AuthResponse, error)
}

// DeadlineService is the subset of services.DeadlineService used by the handlers.
type DeadlineService interface {
	ListForUser(ctx context.Context, userID int64, from, to *time.Time) ([]*models.Deadline, error)
	CreateForUser(ctx context.Context, userID int64, in *models.Deadline) (*models.Deadline, error)
	Delete(ctx context.Context, deadlineID int64) error
}

type HTTPServer struct {
	address   string
	users     UserService
	deadlines DeadlineService
	logger    logging.Logger
	jwtSecret []byte
	engine    *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ds DeadlineService, secretKey string) *HTTPServer {
	s := &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		deadlines: ds,
		jwtSecret: []byte(secretKey),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the configured gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID, s.requestLogger, s.accessTokenMiddleware)

	r.GET("/health", s.health)

	r.POST("/register", s.register)
	r.POST("/auth", s.login)

	d := r.Group("/deadlines")
	d.GET("/get_deadlines_for_user", s.getDeadlinesForUser)
	d.POST("/create_deadline_for_user", s.createDeadlineForUser)
	d.POST("/delete_deadline_for_user", s.deleteDeadlineForUser)
	d.POST("/update_deadline_for_user", s.updateDeadlineForUser)

	return r
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
