package fallback

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"syscall"

	"gitlab.com/elp-2025.net/internal/static/errs"
)

// ServiceResponse is the normalized view of an external response handed to
// the classifier. StatusCode 0 means the transport carried no status.
type ServiceResponse struct {
	StatusCode int
	Body       map[string]interface{}
}

// IsValidResponse reports whether a response is structurally usable: it
// exists, any carried status code is 2xx, and every expected key is present
// in the body. Pure, no side effects.
func IsValidResponse(resp *ServiceResponse, expectedKeys []string) bool {
	if resp == nil {
		return false
	}
	if resp.StatusCode != 0 && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return false
	}
	for _, key := range expectedKeys {
		if _, ok := resp.Body[key]; !ok {
			return false
		}
	}
	return true
}

// ShouldFallback decides whether an outbound-call failure warrants
// substituting synthetic data. Connection refusal, DNS failure, timeouts,
// non-2xx statuses and parse failures qualify; unrecognized errors do not,
// so programmer mistakes propagate instead of being masked.
func ShouldFallback(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode < 200 || httpErr.StatusCode >= 300
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	if errors.Is(err, errs.ErrUnparsableResponse) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"timeout", "json", "parse", "malformed"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
