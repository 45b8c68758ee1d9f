// Package usecase implements the business logic for the auth feature.
package usecase

import "wealth_backend/internal/platform/apperror"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperror.New(apperror.KindNotFound, "USER_NOT_FOUND", "user not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is already taken,
	// whether caught by the pre-check or by the storage unique constraint.
	ErrEmailAlreadyExists = apperror.New(apperror.KindConflict, "EMAIL_ALREADY_REGISTERED", "Email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "INVALID_CREDENTIALS", "Invalid credentials")

	// ErrNotAuthenticated is returned by Me when the token subject no longer exists.
	ErrNotAuthenticated = apperror.New(apperror.KindUnauthenticated, "", "Not authenticated")

	// ErrWeakPassword is returned when the password does not meet the minimum length.
	ErrWeakPassword = apperror.New(apperror.KindInvalidRequest, "WEAK_PASSWORD", "password must be at least 8 characters long")

	// ErrPasswordTooLong is returned when the password exceeds the 72 bytes bcrypt can hash.
	ErrPasswordTooLong = apperror.New(apperror.KindInvalidRequest, "PASSWORD_TOO_LONG", "password must be at most 72 bytes long")
)
