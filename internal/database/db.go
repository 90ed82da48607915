package database

import (
	"errors"
	"fmt"

	"github.com/dcastillo/connector/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPostgresError translates driver errors into the service error taxonomy.
// Uniqueness and constraint violations surface as ErrValidation so callers
// never see raw storage errors; anything unexpected becomes ErrOperation.
func MapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: duplicate value for %s", models.ErrValidation, pgErr.ConstraintName)
		case "23502": // not_null_violation
			return fmt.Errorf("%w: %s is required", models.ErrValidation, pgErr.ColumnName)
		case "23514": // check_violation
			return fmt.Errorf("%w: %s", models.ErrValidation, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %v", models.ErrOperation, err)
}
