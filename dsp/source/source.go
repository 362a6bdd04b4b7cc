package source

import "errors"

// ErrIndexOutOfRange indicates a read past the end of a finite record.
// Unlike the left side, which is zero-padded, the right side is assumed
// exhausted rather than extendable.
var ErrIndexOutOfRange = errors.New("source: index out of range")

// Source is a discretely sampled real-valued process addressed by signed
// sample position.
type Source interface {
	// At returns the sample at position pos.
	At(pos int64) (float64, error)

	// Reset re-zeroes any cached state and re-seeds any internal
	// randomness. A seed of zero draws the next seed from the process-wide
	// sequence; a nonzero seed is exactly reproducible.
	Reset(seed uint64)
}

// Continuous is a real-time-indexed signal. It is the contract required of
// anything plugged into the [Resampled] bridge, and the one implemented by
// the interpolated facades in package signal.
type Continuous interface {
	Value(t float64) (float64, error)
	Reset(seed uint64)
}
