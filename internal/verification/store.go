// Package verification holds the ephemeral OTP challenge state between a
// send and the matching verify attempt.
package verification

import (
	"context"
	"sync"
	"time"

	"github.com/dcastillo/connector/internal/models"
)

// ChallengeStore keeps at most one pending OTP challenge per username, with
// a TTL. Consume removes the challenge so every verify attempt, success or
// failure, spends it.
type ChallengeStore interface {
	Put(ctx context.Context, username string, challenge *models.OTPChallenge, ttl time.Duration) error
	Consume(ctx context.Context, username string) (*models.OTPChallenge, error)
	Delete(ctx context.Context, username string) error
}

type memoryEntry struct {
	challenge *models.OTPChallenge
	expiresAt time.Time
}

// MemoryStore is an in-process ChallengeStore. Suitable for a single
// instance; multi-instance deployments should use the Redis store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(ctx context.Context, username string, challenge *models.OTPChallenge, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[username] = memoryEntry{
		challenge: challenge,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Consume(ctx context.Context, username string) (*models.OTPChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[username]
	if !ok {
		return nil, models.ErrNoChallengePending
	}

	delete(s.entries, username)

	if s.now().After(entry.expiresAt) {
		return nil, models.ErrNoChallengePending
	}

	return entry.challenge, nil
}

func (s *MemoryStore) Delete(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, username)
	return nil
}
