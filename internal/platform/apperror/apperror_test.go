package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidRequest, http.StatusBadRequest},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusBadRequest},
		{KindRateLimited, http.StatusTooManyRequests},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	sentinel := New(KindNotFound, "GOAL_NOT_FOUND", "goal not found")

	assert.Equal(t, KindNotFound, KindOf(sentinel))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("update: %w", sentinel)))
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrap_PreservesIdentity(t *testing.T) {
	t.Parallel()

	sentinel := New(KindConflict, "EMAIL_ALREADY_REGISTERED", "email already registered")
	cause := errors.New("duplicate key value violates unique constraint")

	wrapped := Wrap(sentinel, cause)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "email already registered")
	assert.Equal(t, "", sentinel.Error()[len(sentinel.Message):], "sentinel must not be mutated")
}

func TestNew_DefaultCode(t *testing.T) {
	t.Parallel()

	err := New(KindInvalidRequest, "", "bad body")
	assert.Equal(t, "INVALID_REQUEST", err.Code)
}
