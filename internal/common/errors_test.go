package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusBadRequest},
		{"role mismatch", ErrRoleMismatch, http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials, http.StatusBadRequest},
		{"missing token", ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"config", ErrConfig, http.StatusInternalServerError},
		{"internal", ErrInternalServer, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
		{"wrapped conflict", fmt.Errorf("user already exists with this email: %w", ErrConflict), http.StatusBadRequest},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusFromError(tc.err))
		})
	}
}
