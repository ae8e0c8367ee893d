package model

import "errors"

// Error kinds. Every one is terminal for its request; handlers map them
// to HTTP statuses with errors.Is.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrExtractionFailed  = errors.New("extraction failed")
	ErrFetchFailed       = errors.New("fetch failed")
	ErrProvider          = errors.New("provider unavailable")
	ErrMalformedOutput   = errors.New("malformed model output")
	ErrPersistence       = errors.New("persistence failed")
	ErrNotConfigured     = errors.New("not configured")
	ErrPartialFailure    = errors.New("partial failure")
	ErrEmailTaken        = errors.New("email already registered")
	ErrBadCredentials    = errors.New("invalid email or password")
)
