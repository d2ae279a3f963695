package schema

import "errors"

// Sentinel errors shared by the aligner, deriver, partitioner and renderer.
// Every one of them aborts a run.
var (
	ErrBandLengthMismatch = errors.New("aligned bands have different sample counts")
	ErrTimestampSkew      = errors.New("aligned timestamps differ across bands")
	ErrLengthMismatch     = errors.New("series have different lengths")
	ErrEmptySeries        = errors.New("series has no samples")
	ErrEmptyCycle         = errors.New("cycle has no samples")
	ErrInvalidEphemeris   = errors.New("invalid ephemeris")
	ErrMissingBand        = errors.New("band is missing")
)
