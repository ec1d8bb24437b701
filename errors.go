package exo

import "errors"

// Errors reported for corrupt streams or bad configuration. A stream that
// simply runs out of bits is not corrupt; DecodeInto reports it as
// io.ErrUnexpectedEOF and everything decoded before the end stays valid.
var (
	// ErrInvalidBackReference reports a copy command whose distance
	// reaches before the start of the output.
	ErrInvalidBackReference = errors.New(
		"exo: back reference before start of output")
	// ErrMalformedGamma reports a gamma code whose unary prefix exceeds
	// the configured bound.
	ErrMalformedGamma = errors.New(
		"exo: gamma code prefix exceeds safety bound")
	// ErrNoPriorOffset reports a copy command reusing the previous
	// distance before any distance has been coded.
	ErrNoPriorOffset = errors.New("exo: offset reuse before any offset")
	// ErrOutputSize reports an unusable output size.
	ErrOutputSize = errors.New("exo: output size out of range")
)
