package scancode

import "errors"

// Sentinel errors for structural problems in a raw result document.
// These abort summary generation for the document; tool-reported per-file
// scan errors never do, they become issues instead.
var (
	// ErrMalformedResult is returned when the document does not describe
	// exactly one scanner run.
	ErrMalformedResult = errors.New("malformed scancode result")

	// ErrInvalidTimestamp is returned when a required run timestamp is
	// missing or does not match the scanner's timestamp format.
	ErrInvalidTimestamp = errors.New("invalid scancode timestamp")

	// ErrUnsupportedInput is returned when the run was configured with
	// more than one input root, which the normalizer does not support.
	ErrUnsupportedInput = errors.New("unsupported scancode input configuration")
)
