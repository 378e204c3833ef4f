// ABOUTME: Error taxonomy for OpenRobot API failures.
// ABOUTME: Maps HTTP status codes to typed errors and provides predicate helpers.

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an APIError by the status code that produced it.
type Kind int

const (
	// KindGeneric covers any non-2xx status without a dedicated kind.
	KindGeneric Kind = iota
	KindBadRequest
	KindForbidden
	KindTooManyRequests
	KindInternalServerError
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindForbidden:
		return "forbidden"
	case KindTooManyRequests:
		return "too many requests"
	case KindInternalServerError:
		return "internal server error"
	default:
		return "api error"
	}
}

// KindForStatus returns the error kind the API contract assigns to status.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	case http.StatusInternalServerError:
		return KindInternalServerError
	default:
		return KindGeneric
	}
}

// APIError represents an error response from the OpenRobot API.
// Body holds the decoded JSON error document and Response the raw
// transport response, whose body has already been consumed.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	RequestID  string
	Body       json.RawMessage
	Response   *http.Response
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openrobot: %s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("openrobot: %s (status %d)", e.Kind, e.StatusCode)
}

// New builds an APIError for the given status and decoded body.
func New(status int, body json.RawMessage, resp *http.Response, requestID string) *APIError {
	return &APIError{
		Kind:       KindForStatus(status),
		StatusCode: status,
		Message:    messageFromBody(body),
		RequestID:  requestID,
		Body:       body,
		Response:   resp,
	}
}

// messageFromBody extracts a human-readable message from the error document.
// The service is not consistent about the key it uses.
func messageFromBody(body json.RawMessage) string {
	if len(body) == 0 {
		return ""
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		var s string
		if json.Unmarshal(body, &s) == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}

	for _, key := range []string{"message", "detail", "error"} {
		if s, ok := doc[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// Sentinel errors for failures that never reach a classified response.
var (
	// ErrNoCredential is returned at construction when no token can be resolved.
	ErrNoCredential = errors.New("openrobot: no API token provided")

	// ErrMalformedURL is returned when an absolute target matches no allowed host.
	ErrMalformedURL = errors.New("openrobot: URL is not a valid OpenRobot API URL")

	// ErrMissingRetryAfter is returned when a 429 cannot be rescheduled.
	ErrMissingRetryAfter = errors.New("openrobot: Retry-After header is not present")
)

// URLError reports a target URL rejected before any network call.
type URLError struct {
	URL string
}

func (e *URLError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMalformedURL, e.URL)
}

func (e *URLError) Unwrap() error { return ErrMalformedURL }

// RetryHeaderError reports a 429 response whose Retry-After header is
// missing or unreadable.
type RetryHeaderError struct {
	Value    string
	Body     json.RawMessage
	Response *http.Response
}

func (e *RetryHeaderError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("openrobot: invalid Retry-After header %q", e.Value)
	}
	return ErrMissingRetryAfter.Error()
}

func (e *RetryHeaderError) Unwrap() error { return ErrMissingRetryAfter }

func isKind(err error, kind Kind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// IsAPIError reports whether err carries a classified API response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsBadRequest reports whether err indicates a malformed request (400).
func IsBadRequest(err error) bool {
	return isKind(err, KindBadRequest)
}

// IsForbidden reports whether err indicates a rejected or exhausted token (403).
func IsForbidden(err error) bool {
	return isKind(err, KindForbidden)
}

// IsTooManyRequests reports whether err indicates the rate limit won (429).
func IsTooManyRequests(err error) bool {
	return isKind(err, KindTooManyRequests)
}

// IsInternalServerError reports whether err indicates a server failure (500).
func IsInternalServerError(err error) bool {
	return isKind(err, KindInternalServerError)
}
