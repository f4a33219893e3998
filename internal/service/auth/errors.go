package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken is returned for every token validation failure:
	// bad signature, malformed structure, wrong algorithm, or expiry.
	// The failure modes are deliberately not distinguished to the caller
	// so the API cannot be used as a signature or expiry oracle; the
	// specific reason is logged at debug level only.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
