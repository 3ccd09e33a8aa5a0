package estimator

import "errors"

// Sentinel errors for estimator operations.
var (
	// ErrNilEstimator is returned when a nil estimator is supplied.
	ErrNilEstimator = errors.New("estimator: estimator is nil")

	// ErrUnsupportedCapability is returned when a requested optional
	// capability (probabilities, cloning) is not implemented.
	ErrUnsupportedCapability = errors.New("estimator: capability not supported")

	// ErrInvalidDataset is returned when a dataset violates its invariants.
	ErrInvalidDataset = errors.New("estimator: invalid dataset")

	// ErrPredictionShape is returned when an estimator returns a prediction
	// count that does not match its input rows.
	ErrPredictionShape = errors.New("estimator: prediction count does not match input")
)
