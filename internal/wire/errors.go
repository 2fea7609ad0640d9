package wire

import "errors"

// Errors returned by the wire package.
// Use errors.Is() to check for these in calling code.
var (
	// ErrMalformed is returned when a selector does not have the required
	// shape (wrong length, empty, or non-digit characters).
	ErrMalformed = errors.New("wire: malformed selector")

	// ErrBufferTooSmall is returned when a reply cannot fit in the caller's
	// buffer. Nothing is written in that case.
	ErrBufferTooSmall = errors.New("wire: buffer too small")
)
