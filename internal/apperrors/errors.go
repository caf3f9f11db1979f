// Package apperrors defines the service-level error taxonomy and its single
// translation point to HTTP statuses.
package apperrors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var (
	ErrValidation   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
)

// pgUniqueViolation is the Postgres SQLSTATE for unique constraint conflicts.
const pgUniqueViolation = "23505"

// Status maps a taxonomy error to its HTTP status code. Unknown errors map
// to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HTTP converts a taxonomy error into an echo.HTTPError. An optional message
// overrides the sentinel's default text.
func HTTP(err error, msg ...string) *echo.HTTPError {
	m := err.Error()
	if len(msg) > 0 {
		m = msg[0]
	}
	return echo.NewHTTPError(Status(err), m)
}

// WrapGorm translates storage-layer errors into taxonomy errors: missing rows
// become ErrNotFound, unique constraint conflicts become ErrConflict.
func WrapGorm(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}
	return err
}

// IsDuplicate reports whether err is a duplicate-record conflict.
func IsDuplicate(err error) bool {
	return errors.Is(WrapGorm(err), ErrConflict)
}
