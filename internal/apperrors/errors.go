package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAlreadyExists indicates that an attempt was made to create a resource that already exists.
var ErrAlreadyExists = errors.New("resource already exists")

// ErrDuplicate is kept for repository code that reports unique violations.
var ErrDuplicate = ErrAlreadyExists

// ErrAlreadySeeded indicates the tenant's chart of accounts has already been seeded.
var ErrAlreadySeeded = errors.New("account plan already seeded")

// ErrPeriodClosed indicates an entry targets an accounting period that no longer accepts postings.
var ErrPeriodClosed = errors.New("accounting period is closed")

// ErrAccountNotPostable indicates an entry references an aggregation or inactive account.
var ErrAccountNotPostable = errors.New("account does not accept entries")

// ErrInvalidState indicates an illegal status transition.
var ErrInvalidState = errors.New("invalid state transition")

// ErrProvider indicates the external tax document provider rejected or failed a request.
var ErrProvider = errors.New("tax document provider error")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned when the failure is not the caller's fault.
var ErrInternal = errors.New("internal error")

// AppError wraps infrastructure failures with an HTTP-ish code for logging and mapping.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// IsClientError reports whether err is one of the ledger's rejection kinds, as opposed to an
// infrastructure failure.
func IsClientError(err error) bool {
	for _, kind := range []error{
		ErrValidation, ErrNotFound, ErrAlreadyExists, ErrAlreadySeeded, ErrPeriodClosed,
		ErrAccountNotPostable, ErrInvalidState, ErrProvider, ErrUnauthorized,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
