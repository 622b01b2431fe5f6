package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by catalog, session, and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. a reorder that is not a permutation of the current items).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnknownCurrency is returned when a display currency code is not in the
// conversion table. It wraps ErrValidation so handlers need only one check.
var ErrUnknownCurrency = fmt.Errorf("%w: unknown currency", ErrValidation)
