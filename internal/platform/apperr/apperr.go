// Package apperr defines the error taxonomy shared by the data access
// layer and the HTTP handlers: validation, not-found, conflict, storage.
package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals that the referenced id has no row.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a uniqueness violation.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports caller-supplied input that violates a transfer
// constraint. It is raised before any storage access.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a connection or engine failure. It is surfaced as an
// opaque server error and never retried locally.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// PostgreSQL error codes translated into the taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPG translates a pgx/pgconn failure into the taxonomy. No rows becomes
// ErrNotFound, a unique violation becomes ErrConflict, and a foreign-key
// violation becomes a ValidationError naming the missing reference.
// Anything else is wrapped as a StorageError.
func FromPG(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", constraintDetail(pgErr), ErrConflict)
		case pgForeignKeyViolation:
			return Validationf("%s references a row that does not exist", constraintDetail(pgErr))
		}
	}
	return &StorageError{Op: op, Err: err}
}

// HTTPStatus maps a taxonomy error to its response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return 200
	case IsValidation(err):
		return 400
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	default:
		return 500
	}
}

func constraintDetail(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.Message
}
