package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPG_Nil(t *testing.T) {
	if err := FromPG("insert user", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestFromPG_NoRows(t *testing.T) {
	err := FromPG("get user", pgx.ErrNoRows)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFromPG_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	err := FromPG("insert user", pgErr)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestFromPG_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}
	err := FromPG("insert appointment", pgErr)
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestFromPG_Other(t *testing.T) {
	err := FromPG("get user", errors.New("connection refused"))
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if se.Op != "get user" {
		t.Errorf("expected op preserved, got %q", se.Op)
	}
}

func TestFromPG_WrappedNoRows(t *testing.T) {
	err := FromPG("get message", fmt.Errorf("scan: %w", pgx.ErrNoRows))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound through wrapping, got %v", err)
	}
}

func TestValidationf(t *testing.T) {
	err := Validationf("email %q is malformed", "nope")
	if !IsValidation(err) {
		t.Error("expected IsValidation to be true")
	}
	if err.Error() != `email "nope" is malformed` {
		t.Errorf("unexpected detail: %s", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 200},
		{Validationf("bad input"), 400},
		{ErrNotFound, 404},
		{fmt.Errorf("users_email_key: %w", ErrConflict), 409},
		{&StorageError{Op: "create user", Err: errors.New("down")}, 500},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
