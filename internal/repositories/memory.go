package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dcastillo/connector/internal/models"
)

// MemoryUserRepository is an in-memory credential store enforcing the same
// uniqueness constraints as the Postgres schema. Used in tests and local
// development.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // username -> user
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*models.User),
	}
}

func copyUser(user *models.User) *models.User {
	clone := *user
	if user.SecondLastName != nil {
		v := *user.SecondLastName
		clone.SecondLastName = &v
	}
	return &clone
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}
	return copyUser(user), nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, fmt.Errorf("%w: duplicate value for users_pkey", models.ErrValidation)
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, fmt.Errorf("%w: duplicate value for users_email_key", models.ErrValidation)
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.Username] = copyUser(user)
	return copyUser(user), nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, username string, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}

	for otherName, other := range r.users {
		if otherName != username && other.Email == user.Email {
			return nil, fmt.Errorf("%w: duplicate value for users_email_key", models.ErrValidation)
		}
	}

	updated := copyUser(user)
	updated.Username = username
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	r.users[username] = updated
	return copyUser(updated), nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return models.ErrNotFound
	}
	delete(r.users, username)
	return nil
}

// MemoryTokenRepository is the in-memory counterpart of AuthTokenRepository.
type MemoryTokenRepository struct {
	mu     sync.Mutex
	byKey  map[string]*models.AuthToken
	byUser map[string]*models.AuthToken
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{
		byKey:  make(map[string]*models.AuthToken),
		byUser: make(map[string]*models.AuthToken),
	}
}

func (r *MemoryTokenRepository) GetOrCreate(ctx context.Context, username, candidateKey string) (*models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byUser[username]; ok {
		return existing, nil
	}

	token := &models.AuthToken{Key: candidateKey, Username: username, CreatedAt: time.Now()}
	r.byKey[candidateKey] = token
	r.byUser[username] = token
	return token, nil
}

func (r *MemoryTokenRepository) GetByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byKey[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return token, nil
}

func (r *MemoryTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.byUser[username]; ok {
		delete(r.byKey, token.Key)
		delete(r.byUser, username)
	}
	return nil
}
