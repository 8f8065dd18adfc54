package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or an operation within it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrVerbNotFound indicates the requested verb does not exist.
	ErrVerbNotFound = fmt.Errorf("%w: verb", ErrNotFound)

	// ErrStudyRecordNotFound indicates the requested study record does not exist.
	ErrStudyRecordNotFound = fmt.Errorf("%w: study record", ErrNotFound)

	// ErrProfileNotFound indicates the requested learner profile does not exist.
	ErrProfileNotFound = fmt.Errorf("%w: learner profile", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrEmailExists indicates a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrVerbExists indicates a verb with the given kana reading already exists.
	ErrVerbExists = fmt.Errorf("%w: verb reading", ErrDuplicate)
)

// IsNotFoundError checks whether the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks whether the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
