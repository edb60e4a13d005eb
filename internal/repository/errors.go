package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername is returned when creating a user whose username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrForeignKeyViolation is returned when a reference does not resolve to an existing row.
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
	// ErrInvalidRange is returned when a project's end date precedes its start date.
	ErrInvalidRange = errors.New("end date precedes start date")
	// ErrInvalidBudget is returned when a project budget is negative.
	ErrInvalidBudget = errors.New("budget must not be negative")
	// ErrInvalidEnum is returned when a value is outside its fixed enumeration.
	ErrInvalidEnum = errors.New("value is not in the allowed set")
	// ErrInvalidTransition is returned when a status change is not a legal transition.
	ErrInvalidTransition = errors.New("status transition not allowed")
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAuthFailure is returned for any failed authentication. Unknown user,
	// wrong password and deactivated account are deliberately indistinguishable.
	ErrAuthFailure = errors.New("invalid username or password")
	// ErrStorageUnavailable is returned when the underlying store cannot serve the operation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageErr wraps an unexpected driver error as ErrStorageUnavailable.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
