package scoring

import (
	"fmt"

	"github.com/jonwraymond/bootscore/estimator"
)

// Func scores label or value predictions against true targets.
type Func func(yTrue, yPred []float64) float64

// ProbaFunc scores probability rows against true class labels.
type ProbaFunc func(yTrue []float64, proba [][]float64) float64

// Kind is the orientation of a score.
type Kind int

const (
	// KindAccuracy is the 0/1 accuracy: a gain in [0, 1] over class labels.
	KindAccuracy Kind = iota
	// KindGain is any other higher-is-better score bounded in [0, 1].
	KindGain
	// KindLoss is a lower-is-better score.
	KindLoss
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAccuracy:
		return "accuracy"
	case KindGain:
		return "gain"
	case KindLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Scorer is a named scoring function with its orientation.
type Scorer struct {
	// Name identifies the scorer in logs and reports.
	Name string

	// Kind is the score orientation.
	Kind Kind

	// Func scores label or value predictions. Nil if the scorer only
	// handles probabilities.
	Func Func

	// Proba scores probability predictions. Nil if unsupported.
	Proba ProbaFunc

	// Decomposable marks scores that are the mean of independent per-sample
	// terms. It allows the no-information rate to be computed one row at a
	// time instead of over a materialized n*n product.
	Decomposable bool
}

// IsZero reports whether s is the zero Scorer.
func (s Scorer) IsZero() bool {
	return s.Func == nil && s.Proba == nil
}

// Error converts a score to error space.
func (s Scorer) Error(score float64) float64 {
	if s.Kind == KindLoss {
		return score
	}
	return 1 - score
}

// Validate checks that s can score the given targets in the given mode.
func (s Scorer) Validate(target estimator.TargetType, proba bool) error {
	switch {
	case proba && s.Proba == nil:
		return fmt.Errorf("%w: %q cannot score probabilities", ErrScorerMismatch, s.Name)
	case !proba && s.Func == nil:
		return fmt.Errorf("%w: %q only scores probabilities", ErrScorerMismatch, s.Name)
	case s.Kind == KindAccuracy && target == estimator.TargetRegression:
		return fmt.Errorf("%w: %q expects class labels but targets are continuous", ErrScorerMismatch, s.Name)
	}
	return nil
}

// Option configures a custom Scorer.
type Option func(*Scorer)

// WithDecomposable marks a custom scorer as a mean of per-sample terms.
func WithDecomposable() Option {
	return func(s *Scorer) {
		s.Decomposable = true
	}
}

// Custom wraps a caller-supplied label scorer.
func Custom(name string, kind Kind, fn Func, opts ...Option) Scorer {
	s := Scorer{Name: name, Kind: kind, Func: fn}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// CustomProba wraps a caller-supplied probability scorer.
func CustomProba(name string, kind Kind, fn ProbaFunc, opts ...Option) Scorer {
	s := Scorer{Name: name, Kind: kind, Proba: fn}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Accuracy returns the fraction-of-correct-labels scorer.
func Accuracy() Scorer {
	return Scorer{Name: "accuracy", Kind: KindAccuracy, Func: AccuracyScore, Decomposable: true}
}

// MeanSquaredError returns the mean squared error scorer.
func MeanSquaredError() Scorer {
	return Scorer{Name: "mse", Kind: KindLoss, Func: MSE, Decomposable: true}
}

// MeanAbsoluteError returns the mean absolute error scorer.
func MeanAbsoluteError() Scorer {
	return Scorer{Name: "mae", Kind: KindLoss, Func: MAE, Decomposable: true}
}

// LogLoss returns the cross-entropy scorer for probability predictions.
func LogLoss() Scorer {
	return Scorer{Name: "log_loss", Kind: KindLoss, Proba: CrossEntropy, Decomposable: true}
}

// BrierScore returns the multi-class Brier scorer for probability predictions.
func BrierScore() Scorer {
	return Scorer{Name: "brier", Kind: KindLoss, Proba: Brier, Decomposable: true}
}

// Default returns the scorer used when none is configured: accuracy for
// classification, mean squared error for regression, log loss for
// probabilities.
func Default(target estimator.TargetType, proba bool) Scorer {
	switch {
	case proba:
		return LogLoss()
	case target == estimator.TargetRegression:
		return MeanSquaredError()
	default:
		return Accuracy()
	}
}

// Lookup returns a built-in scorer by name.
func Lookup(name string) (Scorer, bool) {
	switch name {
	case "accuracy":
		return Accuracy(), true
	case "mse":
		return MeanSquaredError(), true
	case "mae":
		return MeanAbsoluteError(), true
	case "log_loss":
		return LogLoss(), true
	case "brier":
		return BrierScore(), true
	default:
		return Scorer{}, false
	}
}
