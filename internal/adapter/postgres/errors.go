package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/sentencegolf/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row (a word, a lemma, or a table name) in the wrapped message.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		case "42P01": // undefined_table
			return fmt.Errorf("%s %s: %w: schema not migrated", entity, key, domain.ErrNotReady)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
