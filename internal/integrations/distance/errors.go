package distance

import "errors"

var (
	// ErrNotConfigured means no provider URL was set; callers fall back to
	// base-price quoting.
	ErrNotConfigured = errors.New("distance provider not configured")

	// ErrRouteNotFound means the provider could not resolve a route between
	// the two locations.
	ErrRouteNotFound = errors.New("route not found")

	// ErrUnavailable covers transport failures and malformed responses.
	ErrUnavailable = errors.New("distance provider unavailable")
)
