package handlers

import (
	"context"

	"github.com/dcastillo/connector/internal/models"
)

// Mock services for handler tests. Each method delegates to a func field so
// individual tests can program exactly the behavior they need.

type MockAuthService struct {
	LoginFunc    func(ctx context.Context, username, email, password string) (string, error)
	RegisterFunc func(ctx context.Context, user *models.User, password string) (*models.User, error)
}

func (m *MockAuthService) Login(ctx context.Context, username, email, password string) (string, error) {
	return m.LoginFunc(ctx, username, email, password)
}

func (m *MockAuthService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	return m.RegisterFunc(ctx, user, password)
}

type MockUserService struct {
	GetUserFunc    func(ctx context.Context, username string) (*models.User, error)
	UpdateUserFunc func(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, username string) error
}

func (m *MockUserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return m.GetUserFunc(ctx, username)
}

func (m *MockUserService) UpdateUser(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error) {
	return m.UpdateUserFunc(ctx, username, update)
}

func (m *MockUserService) DeleteUser(ctx context.Context, username string) error {
	return m.DeleteUserFunc(ctx, username)
}

type MockVerificationService struct {
	SendOTPFunc   func(ctx context.Context, username string) (string, error)
	VerifyOTPFunc func(ctx context.Context, username, submitted string) error
}

func (m *MockVerificationService) SendOTP(ctx context.Context, username string) (string, error) {
	return m.SendOTPFunc(ctx, username)
}

func (m *MockVerificationService) VerifyOTP(ctx context.Context, username, submitted string) error {
	return m.VerifyOTPFunc(ctx, username, submitted)
}
