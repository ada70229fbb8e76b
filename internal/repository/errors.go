package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// ErrDuplicateUsername and ErrDuplicateEmail surface unique-constraint
// violations from the database. The pre-insert existence checks in the
// service layer race with concurrent writers, so the constraint is the
// source of truth.
var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")
)

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return ErrDuplicateUsername
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrDuplicateEmail
	}
	return err
}
