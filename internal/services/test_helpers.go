package services

import (
	"context"
	"time"

	"github.com/dcastillo/connector/internal/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	CreateFunc        func(ctx context.Context, user *models.User) (*models.User, error)
	UpdateFunc        func(ctx context.Context, username string, user *models.User) (*models.User, error)
	DeleteFunc        func(ctx context.Context, username string) error
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrOperation
}

func (m *MockUserRepository) Update(ctx context.Context, username string, user *models.User) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, username, user)
	}
	return nil, models.ErrOperation
}

func (m *MockUserRepository) Delete(ctx context.Context, username string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, username)
	}
	return nil
}

// MockTokenRepository implements auth.TokenRepository for testing
type MockTokenRepository struct {
	GetOrCreateFunc      func(ctx context.Context, username, candidateKey string) (*models.AuthToken, error)
	GetByKeyFunc         func(ctx context.Context, key string) (*models.AuthToken, error)
	DeleteByUsernameFunc func(ctx context.Context, username string) error
}

func (m *MockTokenRepository) GetOrCreate(ctx context.Context, username, candidateKey string) (*models.AuthToken, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, username, candidateKey)
	}
	return &models.AuthToken{Key: candidateKey, Username: username, CreatedAt: time.Now()}, nil
}

func (m *MockTokenRepository) GetByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, models.ErrNotFound
}

func (m *MockTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	if m.DeleteByUsernameFunc != nil {
		return m.DeleteByUsernameFunc(ctx, username)
	}
	return nil
}

// MockEmailSender implements EmailSender for testing
type MockEmailSender struct {
	SendOTPFunc func(ctx context.Context, email, code string) error
	Sent        []SentOTP
}

type SentOTP struct {
	Email string
	Code  string
}

func (m *MockEmailSender) SendOTP(ctx context.Context, email, code string) error {
	if m.SendOTPFunc != nil {
		if err := m.SendOTPFunc(ctx, email, code); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, SentOTP{Email: email, Code: code})
	return nil
}

// NewTestUser returns a user with the given identity and sensible defaults
func NewTestUser(username, email string) *models.User {
	now := time.Now()
	return &models.User{
		Username:      username,
		Email:         email,
		PasswordHash:  "",
		FirstName:     "Test",
		LastName:      "User",
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
