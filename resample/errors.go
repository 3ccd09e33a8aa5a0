package resample

import "errors"

// Sentinel errors for resampling.
var (
	// ErrDegenerateSample is returned when a draw leaves the out-of-bag set empty.
	ErrDegenerateSample = errors.New("resample: out-of-bag set is empty")

	// ErrInvalidSize is returned when fewer than two samples are available.
	ErrInvalidSize = errors.New("resample: dataset must contain at least two samples")

	// ErrInvalidSplits is returned when a splitter is asked for fewer than two splits.
	ErrInvalidSplits = errors.New("resample: number of splits must be greater than one")
)
