package errs

import (
	"errors"
	"fmt"
)

var (
	// Validation failures. Local, immediate, never retried, never fall back.
	ErrCodeTooLarge        = errors.New("source code exceeds the 1,000,000 character limit")
	ErrUnsupportedLanguage = errors.New("language has no mapped executor")
	ErrMalformedInput      = errors.New("malformed input")

	// Credential failures. Fatal, surfaced verbatim, never masked.
	ErrInvalidAPIKey = errors.New("api key is missing or a placeholder")

	// Poll budget exhausted without a terminal status.
	ErrExecutionTimeout = errors.New("execution did not finish in time, please try again")

	// Hint lookups outside the stored range.
	ErrHintNotFound = errors.New("hint not found")

	// Model responses that hold no extractable JSON or miss required keys.
	ErrUnparsableResponse = errors.New("response is not parseable JSON")
)

// HTTPError carries the status code of a failed call against an external
// dependency so callers can classify it without string matching.
type HTTPError struct {
	StatusCode int
	Service    string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// NewHTTPError builds an HTTPError for a non-2xx response.
func NewHTTPError(service string, statusCode int, body string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Service: service, Body: body}
}

// IsAuthError reports whether err is an HTTP 401/403 from a dependency.
func IsAuthError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 401 || httpErr.StatusCode == 403
	}
	return false
}

// IsRateLimitError reports whether err is an HTTP 429 from a dependency.
func IsRateLimitError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429
	}
	return false
}

// IsServerError reports whether err is an HTTP 5xx from a dependency.
func IsServerError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return false
}
