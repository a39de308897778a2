package application

import (
	"errors"
	"fmt"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeFetchFailed   = "FETCH_FAILED"
	ErrCodePersistFailed = "PERSIST_FAILED"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// NewFetchError reports a datastore read the run cannot continue without.
func NewFetchError(what string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeFetchFailed,
		Message: fmt.Sprintf("failed to fetch %s", what),
		Err:     err,
	}
}

// NewPersistError reports a datastore write that did not commit.
func NewPersistError(what string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodePersistFailed,
		Message: fmt.Sprintf("failed to persist %s", what),
		Err:     err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInvalidInput,
		Message: "Invalid input",
		Err:     err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
