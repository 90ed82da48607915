package repositories

import (
	"context"
	"time"

	"github.com/dcastillo/connector/internal/database"
	"github.com/dcastillo/connector/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthTokenRepository struct {
	pool *pgxpool.Pool
}

func NewAuthTokenRepository(db *database.DB) *AuthTokenRepository {
	return &AuthTokenRepository{pool: db.Pool}
}

// GetOrCreate returns the user's existing token, or stores candidateKey as
// the new token if the user has none. The no-op conflict update makes
// RETURNING yield the already-stored row, so concurrent logins converge on
// one key.
func (r *AuthTokenRepository) GetOrCreate(ctx context.Context, username, candidateKey string) (*models.AuthToken, error) {
	query := `
		INSERT INTO auth_tokens (key, username, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET username = auth_tokens.username
		RETURNING key, username, created_at
	`

	var token models.AuthToken
	err := r.pool.QueryRow(ctx, query, candidateKey, username, time.Now()).Scan(
		&token.Key, &token.Username, &token.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &token, nil
}

func (r *AuthTokenRepository) GetByKey(ctx context.Context, key string) (*models.AuthToken, error) {
	query := `SELECT key, username, created_at FROM auth_tokens WHERE key = $1`

	var token models.AuthToken
	err := r.pool.QueryRow(ctx, query, key).Scan(&token.Key, &token.Username, &token.CreatedAt)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &token, nil
}

func (r *AuthTokenRepository) DeleteByUsername(ctx context.Context, username string) error {
	query := `DELETE FROM auth_tokens WHERE username = $1`

	if _, err := r.pool.Exec(ctx, query, username); err != nil {
		return database.MapPostgresError(err)
	}

	return nil
}
