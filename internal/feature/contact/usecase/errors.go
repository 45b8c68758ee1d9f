// Package usecase implements the business logic for the contact feature.
package usecase

import "wealth_backend/internal/platform/apperror"

// ErrInvalidContact is returned when a submission has an empty field or a malformed email.
var ErrInvalidContact = apperror.New(apperror.KindInvalidRequest, "INVALID_CONTACT", "invalid contact message")
