package iptrie

import "errors"

// Sentinel errors surfaced at the engine's input boundary. Lookups never
// fail (a non-match is reported via Result.Found, not an error); only
// Add and address parsing can.
var (
	// ErrMalformedAddress is returned when a textual address fails to parse.
	ErrMalformedAddress = errors.New("iptrie: malformed address")

	// ErrNegativeExtraBits is returned when Add is called with a negative
	// extra-bits count. Oversized (but non-negative) extra-bits counts are
	// not an error: they clamp silently to the default route.
	ErrNegativeExtraBits = errors.New("iptrie: extra_bits must not be negative")

	// ErrTornDown is returned by Add once Teardown has released the
	// engine's trees.
	ErrTornDown = errors.New("iptrie: engine has been torn down")
)
