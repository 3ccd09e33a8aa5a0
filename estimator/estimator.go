package estimator

import "context"

// Estimator is the required model capability.
//
// Contract:
// - Fit trains on X and y, replacing any previously learned state.
// - Predict is pure given the fitted state and returns one value per row.
// - Context: implementations should honor cancellation for long fits.
// - Errors: returned errors are propagated to the caller unchanged.
type Estimator interface {
	Fit(ctx context.Context, X [][]float64, y []float64) error
	Predict(ctx context.Context, X [][]float64) ([]float64, error)
}

// ProbaPredictor is implemented by estimators that produce class
// probabilities. Each returned row holds one probability per class, ordered
// by class label.
type ProbaPredictor interface {
	PredictProba(ctx context.Context, X [][]float64) ([][]float64, error)
}

// Cloner is implemented by estimators that can produce an independent, unfit
// copy of their configuration.
type Cloner interface {
	Clone() Estimator
}

// Typed is implemented by estimators that declare whether they classify or
// regress. It takes precedence over inferring the type from targets.
type Typed interface {
	TargetType() TargetType
}

// TargetType distinguishes classification from regression targets.
type TargetType int

const (
	// TargetUnknown means the type has not been determined.
	TargetUnknown TargetType = iota
	// TargetClassification means targets are discrete class labels.
	TargetClassification
	// TargetRegression means targets are continuous values.
	TargetRegression
)

// String returns the string representation of the target type.
func (t TargetType) String() string {
	switch t {
	case TargetClassification:
		return "classification"
	case TargetRegression:
		return "regression"
	default:
		return "unknown"
	}
}

// Capabilities records which optional capabilities an estimator exposes.
type Capabilities struct {
	Proba      bool
	Clone      bool
	TargetType TargetType
}

// Resolve inspects est once and reports its optional capabilities.
func Resolve(est Estimator) (Capabilities, error) {
	if est == nil {
		return Capabilities{}, ErrNilEstimator
	}

	var caps Capabilities
	_, caps.Proba = est.(ProbaPredictor)
	_, caps.Clone = est.(Cloner)
	if typed, ok := est.(Typed); ok {
		caps.TargetType = typed.TargetType()
	}
	return caps, nil
}
