package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dcastillo/connector/internal/models"
)

const tokenKeyBytes = 20 // 40 hex characters on the wire

// TokenRepository defines the persistence interface for bearer tokens
type TokenRepository interface {
	GetOrCreate(ctx context.Context, username, candidateKey string) (*models.AuthToken, error)
	GetByKey(ctx context.Context, key string) (*models.AuthToken, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// TokenManager issues and resolves opaque bearer tokens. A user holds at
// most one active token; repeat logins return the stored key.
type TokenManager struct {
	repo TokenRepository
}

func NewTokenManager(repo TokenRepository) *TokenManager {
	return &TokenManager{repo: repo}
}

// Issue returns the user's bearer token, minting one on first login.
func (tm *TokenManager) Issue(ctx context.Context, username string) (string, error) {
	keyBytes := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(keyBytes); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}

	token, err := tm.repo.GetOrCreate(ctx, username, hex.EncodeToString(keyBytes))
	if err != nil {
		return "", err
	}

	return token.Key, nil
}

// Authenticate resolves a bearer key to the owning username.
func (tm *TokenManager) Authenticate(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", models.ErrUnauthorized
	}

	token, err := tm.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrUnauthorized
		}
		return "", err
	}

	return token.Username, nil
}

// Revoke invalidates the user's active token, if any.
func (tm *TokenManager) Revoke(ctx context.Context, username string) error {
	return tm.repo.DeleteByUsername(ctx, username)
}
