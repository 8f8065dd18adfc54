package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/benkyo/doushi-api/internal/api"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/benkyo/doushi-api/internal/service"
	"github.com/benkyo/doushi-api/internal/service/auth"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"verb not found (store)", store.ErrVerbNotFound, http.StatusNotFound},
		{"verb not found (service)", service.ErrVerbNotFound, http.StatusNotFound},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"verb exists", store.ErrVerbExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid practice", service.ErrInvalidPractice, http.StatusBadRequest},
		{"invalid morphology", conjugation.ErrInvalidMorphology, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("context: %w", store.ErrVerbNotFound), http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors get specific messages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Verb not found", api.GetSafeErrorMessage(service.ErrVerbNotFound))
		assert.Equal(t, "Email already exists", api.GetSafeErrorMessage(store.ErrEmailExists))
		assert.Equal(t, "Invalid token", api.GetSafeErrorMessage(auth.ErrExpiredToken))
	})

	t.Run("unknown errors never leak details", func(t *testing.T) {
		t.Parallel()
		err := errors.New("pq: connection refused host=10.0.0.5 password=hunter2")
		msg := api.GetSafeErrorMessage(err)
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "hunter2")
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
	})
}
