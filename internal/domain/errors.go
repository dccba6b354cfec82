package domain

import "errors"

// ErrNotFound is returned when a requested destination (or other catalog
// entry) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a format or range check
// (e.g. a non-numeric day count, a choice outside the listed options).
// The console prompts re-ask on it; handlers map it to HTTP 422.
var ErrValidation = errors.New("validation error")
