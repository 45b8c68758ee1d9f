// Package usecase implements the business logic for the goals feature.
package usecase

import "wealth_backend/internal/platform/apperror"

var (
	// ErrGoalNotFound is returned when a goal does not exist or belongs to another user.
	// The two cases are indistinguishable to the caller.
	ErrGoalNotFound = apperror.New(apperror.KindNotFound, "GOAL_NOT_FOUND", "Goal not found")

	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = apperror.New(apperror.KindInvalidRequest, "NO_FIELDS_TO_UPDATE", "No fields to update")

	// ErrInvalidGoal is the base of every field validation failure.
	ErrInvalidGoal = apperror.New(apperror.KindInvalidRequest, "INVALID_GOAL", "invalid goal")
)

// invalidGoal returns an ErrInvalidGoal carrying a field specific message.
func invalidGoal(msg string) error {
	return apperror.New(ErrInvalidGoal.Kind, ErrInvalidGoal.Code, msg)
}
