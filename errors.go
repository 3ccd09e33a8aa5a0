package bootscore

import (
	"errors"

	"github.com/jonwraymond/bootscore/estimator"
	"github.com/jonwraymond/bootscore/resample"
	"github.com/jonwraymond/bootscore/scoring"
)

// ErrConfiguration is returned, wrapped with the offending setting, when a
// run is configured with invalid parameters or an invalid dataset.
var ErrConfiguration = errors.New("bootscore: invalid configuration")

// Errors surfaced from the lower layers, re-exported for errors.Is checks.
var (
	// ErrUnsupportedCapability: the estimator lacks cloning or probabilities.
	ErrUnsupportedCapability = estimator.ErrUnsupportedCapability

	// ErrDegenerateSample: a draw left no out-of-bag samples and the
	// degenerate policy did not allow a redraw.
	ErrDegenerateSample = resample.ErrDegenerateSample

	// ErrScorerMismatch: the scorer cannot score the targets or the
	// prediction mode.
	ErrScorerMismatch = scoring.ErrScorerMismatch
)
