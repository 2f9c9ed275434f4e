// Package services contains server-side business logic: registration and
// login (AuthService) and per-user deadline management (DeadlineService).
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/auth"
	"github.com/dmitrijs2005/deathline/internal/server/config"
	"github.com/dmitrijs2005/deathline/internal/server/models"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/repomanager"
)

// MessageOK is the message returned on successful register and login.
const MessageOK = "OK"

// AuthResponse is the outcome of a successful register or login.
type AuthResponse struct {
	ID          int64
	Message     string
	AccessToken string
}

// AuthService registers users and checks their credentials.
type AuthService struct {
	db                          dbx.DBTX
	repomanager                 repomanager.RepositoryManager
	passwords                   PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db dbx.DBTX, m repomanager.RepositoryManager, passwords PasswordHasher,
	cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		passwords:                   passwords,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "auth_service"),
	}
}

// Register inserts a new user unconditionally. Duplicate emails are accepted
// and produce distinct ids.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	stored, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Email: email, Password: stored})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "email", user.Email, "id", user.ID)

	return s.response(user.ID)
}

// Login looks the user up by email and compares the password. An unknown
// email and a wrong password both yield common.ErrAuth.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAuth
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.passwords.Matches(user.Password, password) {
		return nil, common.ErrAuth
	}

	s.logger.Info(ctx, "login successful", "id", user.ID)

	return s.response(user.ID)
}

func (s *AuthService) response(userID int64) (*AuthResponse, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResponse{ID: userID, Message: MessageOK, AccessToken: token}, nil
}
