package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/marketing"
)

// Outcome is what happened to one contact in an import pass.
type Outcome string

const (
	OutcomeSucceeded    Outcome = "succeeded"
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeRejected     Outcome = "rejected"
	OutcomeFailed       Outcome = "failed"
	OutcomeNoCredential Outcome = "no_credential"
)

// CategorizeError maps the result of a single dispatch to its outcome. A nil error is
// a success.
func CategorizeError(err error) Outcome {
	if err == nil {
		return OutcomeSucceeded
	}

	if errors.Is(err, marketing.ErrCredentialUnavailable) {
		return OutcomeNoCredential
	}

	// Upstream rejection signals drive the lockout.
	if marketing.IsRateLimited(err) {
		return OutcomeRateLimited
	}

	if domain.IsErrorCode(err, domain.ErrCodeCampaignRejected) {
		return OutcomeRejected
	}

	// Transport errors, timeouts and any other HTTP status
	return OutcomeFailed
}

// IsUnauthorized reports a 401 from the campaign API, meaning the held token was
// revoked before its validity window ran out.
func IsUnauthorized(err error) bool {
	apiErr, ok := marketing.IsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsCancellation reports whether err came from the caller giving up.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
