package domain

import "errors"

// Provider failure taxonomy. Both are recovered locally by the scanner: the
// affected location's scan is skipped, siblings continue, nothing partial is
// written.
var (
	// ErrProviderUnavailable covers network errors, timeouts, and non-2xx
	// responses from the weather provider.
	ErrProviderUnavailable = errors.New("weather provider unavailable")

	// ErrMalformedResponse covers provider responses missing expected fields.
	ErrMalformedResponse = errors.New("malformed provider response")
)
