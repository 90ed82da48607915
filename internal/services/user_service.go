package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dcastillo/connector/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, username string, user *models.User) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

// UserService handles profile business logic
type UserService struct {
	repo   UserRepository
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// translateStoreError collapses repository failures into the three error
// kinds profile callers may see: not-found, validation, operation.
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return err
	case errors.Is(err, models.ErrValidation):
		return err
	default:
		return models.ErrOperation
	}
}

// GetUser retrieves a user by username
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("username", username))
		} else {
			s.logger.Error("failed to get user", slog.String("username", username), slog.Any("error", err))
		}
		return nil, translateStoreError(err)
	}

	return user, nil
}

// UpdateUser applies a partial profile update. Changing the email address
// resets the verified flag so the new address must be proven again.
func (s *UserService) UpdateUser(ctx context.Context, username string, update *models.UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("username", username))
		} else {
			s.logger.Error("failed to get user", slog.String("username", username), slog.Any("error", err))
		}
		return nil, translateStoreError(err)
	}

	if update.Email != nil {
		user.Email = *update.Email
		user.EmailVerified = false
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.SecondLastName != nil {
		user.SecondLastName = update.SecondLastName
	}

	updatedUser, err := s.repo.Update(ctx, username, user)
	if err != nil {
		s.logger.Error("failed to update user", slog.String("username", username), slog.Any("error", err))
		return nil, translateStoreError(err)
	}

	s.logger.Info("user updated", slog.String("username", username))
	return updatedUser, nil
}

// DeleteUser removes the user record
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("username", username))
		} else {
			s.logger.Error("failed to delete user", slog.String("username", username), slog.Any("error", err))
		}
		return translateStoreError(err)
	}

	s.logger.Info("user deleted", slog.String("username", username))
	return nil
}
