package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dcastillo/connector/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a ChallengeStore backed by Redis, for deployments with more
// than one service instance. Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func challengeKey(username string) string {
	return "otp:challenge:" + username
}

func (s *RedisStore) Put(ctx context.Context, username string, challenge *models.OTPChallenge, ttl time.Duration) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to encode challenge: %w", err)
	}

	if err := s.client.Set(ctx, challengeKey(username), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrOperation, err)
	}

	return nil
}

func (s *RedisStore) Consume(ctx context.Context, username string) (*models.OTPChallenge, error) {
	payload, err := s.client.GetDel(ctx, challengeKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNoChallengePending
		}
		return nil, fmt.Errorf("%w: %v", models.ErrOperation, err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(payload), &challenge); err != nil {
		return nil, fmt.Errorf("failed to decode challenge: %w", err)
	}

	return &challenge, nil
}

func (s *RedisStore) Delete(ctx context.Context, username string) error {
	if err := s.client.Del(ctx, challengeKey(username)).Err(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrOperation, err)
	}
	return nil
}
