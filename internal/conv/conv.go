// Package conv provides small type-conversion helpers shared across packages.
package conv

import (
	"fmt"
	"net/url"
)

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// SetOptional sets key in values when v is non-nil. Unset optional
// parameters are left out of the request entirely.
func SetOptional[T any](values url.Values, key string, v *T) {
	if v == nil {
		return
	}
	values.Set(key, fmt.Sprint(*v))
}
