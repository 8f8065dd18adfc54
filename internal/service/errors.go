package service

import "errors"

// Sentinel errors shared across service implementations. Callers check
// these with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrVerbNotFound indicates the requested verb is not in the catalog.
	ErrVerbNotFound = errors.New("verb not found")

	// ErrInvalidPractice indicates the practice submission failed input
	// validation before reaching the mastery engine.
	ErrInvalidPractice = errors.New("invalid practice submission")
)
