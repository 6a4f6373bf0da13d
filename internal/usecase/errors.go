package usecase

import (
	"errors"

	"skyyatra/pkg/utils"
)

var (
	ErrAuthRequired       = errors.New("unauthorized: user must be logged in to create booking")
	ErrLookupFailure      = errors.New("lookup failed")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrMissingBundle      = errors.New("booking bundle not found")
	ErrCheckoutExpired    = errors.New("checkout expired")
	ErrFlightFull         = errors.New("no seats left on flight")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var ErrInvalidTransition = errors.New("invalid state transition")

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
