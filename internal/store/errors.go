package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by the OrFail lookups and by key-addressed
	// update/delete when no row matches.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate maps Postgres unique-constraint violations (23505).
	ErrDuplicate = errors.New("duplicate record")

	// ErrForeignKey maps Postgres foreign-key violations (23503).
	ErrForeignKey = errors.New("foreign key violation")

	// ErrInvalidQuery marks a malformed request (unknown field, group-by
	// field outside the bucket list) rejected before any database round-trip.
	ErrInvalidQuery = errors.New("invalid query")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError translates driver and gorm errors into the store's taxonomy.
// Anything unrecognized propagates opaquely.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		}
	}
	return err
}

func invalidQuery(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
}
