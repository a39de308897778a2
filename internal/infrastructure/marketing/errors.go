package marketing

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCredentialUnavailable is returned when no access token could be obtained after every
// refresh attempt. Callers skip the current item and carry on.
var ErrCredentialUnavailable = errors.New("marketing: access token unavailable")

// APIError is a non-2xx HTTP response from the campaign or accounts server.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketing api error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("marketing api returned status %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited reports an HTTP 429.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsRateLimited reports whether err carries an HTTP 429 from the campaign API.
func IsRateLimited(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.IsRateLimited()
}
