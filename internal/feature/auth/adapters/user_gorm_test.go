package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wealth_backend/internal/feature/auth/domain/entity"
	"wealth_backend/internal/feature/auth/usecase"
	"wealth_backend/internal/platform/apperror"
	"wealth_backend/internal/platform/db/dbtest"
)

func newUser(id, email string) *entity.User {
	return &entity.User{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserGorm(dbtest.Open(t))

		err := repo.Create(context.Background(), newUser("u-1", "test@example.com"))

		assert.NoError(t, err)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		repo := NewUserGorm(dbtest.Open(t))
		require.NoError(t, repo.Create(context.Background(), newUser("u-1", "dup@example.com")))

		err := repo.Create(context.Background(), newUser("u-2", "dup@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})

	t.Run("nil user error", func(t *testing.T) {
		repo := NewUserGorm(dbtest.Open(t))

		assert.Error(t, repo.Create(context.Background(), nil))
	})
}

func TestUserGorm_Find(t *testing.T) {
	repo := NewUserGorm(dbtest.Open(t))
	want := newUser("u-1", "find@example.com")
	want.Picture = "https://example.com/me.png"
	require.NoError(t, repo.Create(context.Background(), want))

	t.Run("by email", func(t *testing.T) {
		got, err := repo.FindByEmail(context.Background(), "find@example.com")
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Picture, got.Picture)
		assert.Equal(t, want.PasswordHash, got.PasswordHash)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.FindByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "find@example.com", got.Email)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), "u-404")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres 23505", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"other", gorm.ErrInvalidData, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
