package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dcastillo/connector/internal/auth"
	"github.com/dcastillo/connector/internal/models"
	pkgauth "github.com/dcastillo/connector/pkg/auth"
	pkglogger "github.com/dcastillo/connector/pkg/logger"
)

// AuthConfig holds the policy knobs for authentication
type AuthConfig struct {
	// RequireVerifiedEmail rejects logins until the account's email address
	// has been verified.
	RequireVerifiedEmail bool
	BcryptCost           int
}

// AuthService handles login and registration
type AuthService struct {
	repo        UserRepository
	tm          *auth.TokenManager
	cfg         AuthConfig
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

// NewAuthService creates a new AuthService
func NewAuthService(repo UserRepository, tm *auth.TokenManager, cfg AuthConfig, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *AuthService {
	return &AuthService{
		repo:        repo,
		tm:          tm,
		cfg:         cfg,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// Login authenticates by username or email and returns the user's bearer
// token. Unknown identity and wrong password produce the same error so
// callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if (username == "" && email == "") || password == "" {
		s.logger.Info("login attempt with incomplete credentials")
		return "", models.ErrMissingCredentials
	}

	var (
		user *models.User
		err  error
	)
	if username != "" {
		user, err = s.repo.GetByUsername(ctx, username)
	} else {
		user, err = s.repo.GetByEmail(ctx, email)
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login failed: invalid credentials")
			s.auditLogger.Log(pkglogger.AuditEvent{
				EventType:     "login_failed",
				FailureReason: "invalid_credentials",
				Success:       false,
			})
			return "", models.ErrInvalidCredentials
		}
		s.logger.Error("failed to resolve login identity", slog.Any("error", err))
		return "", models.ErrOperation
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login failed: invalid credentials")
		s.auditLogger.Log(pkglogger.AuditEvent{
			EventType:     "login_failed",
			Username:      user.Username,
			FailureReason: "invalid_credentials",
			Success:       false,
		})
		return "", models.ErrInvalidCredentials
	}

	if s.cfg.RequireVerifiedEmail && !user.EmailVerified {
		s.logger.Info("login blocked: email not verified", slog.String("username", user.Username))
		s.auditLogger.Log(pkglogger.AuditEvent{
			EventType:     "login_failed",
			Username:      user.Username,
			FailureReason: "email_not_verified",
			Success:       false,
		})
		return "", models.ErrEmailNotVerified
	}

	token, err := s.tm.Issue(ctx, user.Username)
	if err != nil {
		s.logger.Error("failed to issue token", slog.String("username", user.Username), slog.Any("error", err))
		return "", models.ErrOperation
	}

	s.logger.Info("user logged in", slog.String("username", user.Username))
	s.auditLogger.Log(pkglogger.AuditEvent{
		EventType: "login_success",
		Username:  user.Username,
		Success:   true,
	})

	return token, nil
}

// Register creates a new account. The password is checked against the
// policy and hashed before it reaches the repository; the verified flag
// always starts false.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	if err := pkgauth.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	hashedPassword, err := pkgauth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, models.ErrOperation
	}
	user.PasswordHash = hashedPassword
	user.EmailVerified = false

	createdUser, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			s.logger.Info("registration failed: constraint violation")
			return nil, err
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrOperation
	}

	s.logger.Info("user registered", slog.String("username", createdUser.Username))
	s.auditLogger.Log(pkglogger.AuditEvent{
		EventType: "registration",
		Username:  createdUser.Username,
		Success:   true,
	})

	return createdUser, nil
}
