package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("requested resource not found")
	ErrConflict           = errors.New("resource conflict") // e.g., email already registered
	ErrRoleMismatch       = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrForbidden          = errors.New("forbidden access")

	ErrMissingToken = errors.New("authentication token required")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrConfig         = errors.New("server configuration error")
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Not-found, conflict and role-mismatch surface as 400 on the auth
// endpoints, matching the wire contract of the original service.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrRoleMismatch) ||
		errors.Is(err, ErrInvalidCredentials) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrTokenExpired) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrConfig) {
		return http.StatusInternalServerError
	}

	// Safety net: the repositories translate unique violations to
	// ErrConflict, but a driver error escaping untranslated still maps
	// to the same status instead of a 500.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
