package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo/connector/internal/models"
)

func TestMapPostgresError_Nil(t *testing.T) {
	assert.NoError(t, MapPostgresError(nil))
}

func TestMapPostgresError_NoRows(t *testing.T) {
	err := MapPostgresError(pgx.ErrNoRows)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMapPostgresError_WrappedNoRows(t *testing.T) {
	err := MapPostgresError(fmt.Errorf("query user: %w", pgx.ErrNoRows))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMapPostgresError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	err := MapPostgresError(pgErr)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "users_email_key")
}

func TestMapPostgresError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", ColumnName: "email"}

	err := MapPostgresError(pgErr)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "email is required")
}

func TestMapPostgresError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "users_username_check"}

	err := MapPostgresError(pgErr)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "users_username_check")
}

func TestMapPostgresError_UnknownError(t *testing.T) {
	err := MapPostgresError(errors.New("connection reset by peer"))
	require.ErrorIs(t, err, models.ErrOperation)
	assert.NotErrorIs(t, err, models.ErrValidation)
}

func TestMapPostgresError_UnknownPgCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57014"} // query_canceled

	err := MapPostgresError(pgErr)
	assert.ErrorIs(t, err, models.ErrOperation)
}
