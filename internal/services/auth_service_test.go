package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dcastillo/connector/internal/auth"
	"github.com/dcastillo/connector/internal/models"
	pkgauth "github.com/dcastillo/connector/pkg/auth"
	pkglogger "github.com/dcastillo/connector/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBcryptCost = 4 // minimum cost, keeps the suite fast

func newAuthService(t *testing.T, userRepo *MockUserRepository, tokenRepo *MockTokenRepository, cfg AuthConfig) *AuthService {
	t.Helper()

	if tokenRepo == nil {
		tokenRepo = &MockTokenRepository{}
	}
	cfg.BcryptCost = testBcryptCost

	logger := slog.Default()
	return NewAuthService(userRepo, auth.NewTokenManager(tokenRepo), cfg, logger, pkglogger.NewAuditLogger(logger))
}

func userWithPassword(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	user := NewTestUser(username, email)
	hash, err := pkgauth.HashPassword(password, testBcryptCost)
	require.NoError(t, err)
	user.PasswordHash = hash
	return user
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := newAuthService(t, &MockUserRepository{}, nil, AuthConfig{})

	cases := []struct {
		name               string
		username, email    string
		password           string
	}{
		{"no identity", "", "", "Secret1!"},
		{"no password", "alice", "", ""},
		{"nothing", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, models.ErrMissingCredentials)
		})
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(t, &MockUserRepository{}, nil, AuthConfig{})

	_, err := svc.Login(context.Background(), "ghost", "", "Secret1!")

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := userWithPassword(t, "alice", "a@x.com", "Secret1!")
	userRepo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{})

	_, err := svc.Login(context.Background(), "alice", "", "WrongPass1!")

	// Same error as unknown user, so callers cannot tell the cases apart
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_Login_ByUsername(t *testing.T) {
	user := userWithPassword(t, "alice", "a@x.com", "Secret1!")
	userRepo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			require.Equal(t, "alice", username)
			return user, nil
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{})

	token, err := svc.Login(context.Background(), "alice", "", "Secret1!")

	require.NoError(t, err)
	assert.Len(t, token, 40)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	user := userWithPassword(t, "alice", "a@x.com", "Secret1!")
	userRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			require.Equal(t, "a@x.com", email)
			return user, nil
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{})

	token, err := svc.Login(context.Background(), "", "A@X.com", "Secret1!")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_ReusesExistingToken(t *testing.T) {
	user := userWithPassword(t, "alice", "a@x.com", "Secret1!")
	userRepo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	tokenRepo := &MockTokenRepository{
		GetOrCreateFunc: func(ctx context.Context, username, candidateKey string) (*models.AuthToken, error) {
			// Simulate a stored token from an earlier login
			return &models.AuthToken{Key: "existing0000000000000000000000000000key1", Username: username, CreatedAt: time.Now()}, nil
		},
	}
	svc := newAuthService(t, userRepo, tokenRepo, AuthConfig{})

	first, err := svc.Login(context.Background(), "alice", "", "Secret1!")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "alice", "", "Secret1!")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuthService_Login_RequireVerifiedEmail(t *testing.T) {
	user := userWithPassword(t, "alice", "a@x.com", "Secret1!")
	userRepo := &MockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return user, nil
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{RequireVerifiedEmail: true})

	_, err := svc.Login(context.Background(), "alice", "", "Secret1!")
	assert.ErrorIs(t, err, models.ErrEmailNotVerified)

	user.EmailVerified = true
	token, err := svc.Login(context.Background(), "alice", "", "Secret1!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			user.CreatedAt = time.Now()
			user.UpdatedAt = time.Now()
			return user, nil
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{})

	newUser := NewTestUser("alice", "a@x.com")
	newUser.EmailVerified = true // must not survive registration

	created, err := svc.Register(context.Background(), newUser, "Secret1!")

	require.NoError(t, err)
	assert.False(t, created.EmailVerified)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NoError(t, pkgauth.ComparePassword(created.PasswordHash, "Secret1!"))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := newAuthService(t, &MockUserRepository{}, nil, AuthConfig{})

	cases := map[string]string{
		"too short":       "Ab!",
		"no uppercase":    "secret1!",
		"no special char": "Secret11",
	}

	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), NewTestUser("alice", "a@x.com"), password)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateKey(t *testing.T) {
	userRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, user *models.User) (*models.User, error) {
			return nil, fmt.Errorf("%w: duplicate value for users_email_key", models.ErrValidation)
		},
	}
	svc := newAuthService(t, userRepo, nil, AuthConfig{})

	_, err := svc.Register(context.Background(), NewTestUser("alice", "a@x.com"), "Secret1!")

	assert.ErrorIs(t, err, models.ErrValidation)
}
