package gateway

import "net/http"

// Error is the normalized failure for every unsuccessful upstream call. Its
// message is the fixed, operation-specific label shown to the user; the
// upstream response body is never surfaced. The real HTTP status is
// preserved in StatusCode so callers branch on it instead of parsing the
// message text.
type Error struct {
	// Service is the logical backend the call targeted.
	Service Service
	// Op is the user-facing operation label, e.g. "Failed to fetch products".
	Op string
	// StatusCode is the upstream HTTP status; 0 when no usable response
	// was received, either a transport failure or an undecodable body.
	StatusCode int

	cause error
}

func (e *Error) Error() string {
	return e.Op
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Unauthorized reports whether the upstream rejected the attached credential.
// The router's error handler clears the session token when this is true.
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
