package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidCodeCount     = "INVALID_CODE_COUNT"
	ErrCodeInvalidBatchID       = "INVALID_BATCH_ID"
	ErrCodeCampaignRejected     = "CAMPAIGN_REJECTED"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidCodeCountError(raw string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCodeCount,
		Message: fmt.Sprintf("offer code count must be a positive integer, got %q", raw),
	}
}

func NewInvalidBatchIDError(raw string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidBatchID,
		Message: fmt.Sprintf("invalid batch id %q", raw),
		Err:     err,
	}
}

// NewCampaignRejectedError wraps an application-level refusal from the campaign API.
func NewCampaignRejectedError(status, message string) *DomainError {
	if message == "" {
		message = "Unknown"
	}
	return &DomainError{
		Code:    ErrCodeCampaignRejected,
		Message: fmt.Sprintf("campaign rejected contact (status %q): %s", status, message),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
