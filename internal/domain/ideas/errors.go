package ideas

import "errors"

var (
	// ErrInvalidInput is returned when a submission fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a requested idea doesn't exist
	ErrNotFound = errors.New("idea not found")

	// ErrPersistenceUnavailable is returned when the store cannot be read or written
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrPersistenceFailure is returned by the submission workflow when the new idea could not be stored
	ErrPersistenceFailure = errors.New("persistence failure")
)
