package openrobot

import (
	internalerrors "github.com/openrobot/openrobot-go/internal/errors"
)

// APIError represents an error response from the OpenRobot API.
type APIError = internalerrors.APIError

// ErrorKind classifies an APIError.
type ErrorKind = internalerrors.Kind

// Error kinds carried by APIError.Kind.
const (
	KindGeneric             = internalerrors.KindGeneric
	KindBadRequest          = internalerrors.KindBadRequest
	KindForbidden           = internalerrors.KindForbidden
	KindTooManyRequests     = internalerrors.KindTooManyRequests
	KindInternalServerError = internalerrors.KindInternalServerError
)

// URLError reports a target URL rejected before any network call.
type URLError = internalerrors.URLError

// RetryHeaderError reports a 429 that could not be retried because
// Retry-After was missing or unreadable.
type RetryHeaderError = internalerrors.RetryHeaderError

var (
	// ErrNoCredential is returned by NewClient when no token can be resolved.
	ErrNoCredential = internalerrors.ErrNoCredential

	// ErrMalformedURL matches every URLError.
	ErrMalformedURL = internalerrors.ErrMalformedURL

	// ErrMissingRetryAfter matches every RetryHeaderError.
	ErrMissingRetryAfter = internalerrors.ErrMissingRetryAfter
)

// IsForbidden reports whether err indicates the token was rejected or exhausted (403).
func IsForbidden(err error) bool {
	return internalerrors.IsForbidden(err)
}

// IsBadRequest reports whether err indicates invalid parameters (400).
func IsBadRequest(err error) bool {
	return internalerrors.IsBadRequest(err)
}

// IsTooManyRequests reports whether err indicates the rate limit was not
// overcome, either because handling is off or the tries ran out (429).
func IsTooManyRequests(err error) bool {
	return internalerrors.IsTooManyRequests(err)
}

// IsInternalServerError reports whether err indicates a server failure (500).
func IsInternalServerError(err error) bool {
	return internalerrors.IsInternalServerError(err)
}

// IsAPIError reports whether err carries any non-success API response.
func IsAPIError(err error) bool {
	return internalerrors.IsAPIError(err)
}
