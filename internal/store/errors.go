package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors (e.g., ErrUserNotFound, ErrCheckInNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrNotOwned is returned when an entity exists but belongs to a
	// different user than the one performing the operation.
	ErrNotOwned = errors.New("entity not owned by user")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCheckInNotFound indicates that the requested check-in does not exist.
	ErrCheckInNotFound = fmt.Errorf("%w: check-in", ErrNotFound)

	// ErrJournalNotFound indicates that the requested journal does not exist.
	ErrJournalNotFound = fmt.Errorf("%w: journal", ErrNotFound)

	// ErrPageNotFound indicates that the requested journal page does not exist.
	ErrPageNotFound = fmt.Errorf("%w: journal page", ErrNotFound)

	// Entity-specific "not owned" errors

	// ErrCheckInNotOwned indicates that the check-in belongs to another user.
	ErrCheckInNotOwned = fmt.Errorf("%w: check-in", ErrNotOwned)

	// ErrPageNotOwned indicates that the journal page belongs to another user.
	ErrPageNotOwned = fmt.Errorf("%w: journal page", ErrNotOwned)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already
	// exists. Returned when registering with an email that's in use.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotOwnedError checks if the error is any kind of ownership error.
func IsNotOwnedError(err error) bool {
	return errors.Is(err, ErrNotOwned)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
