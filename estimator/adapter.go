package estimator

import (
	"context"
	"fmt"
)

// AdapterConfig configures how the adapter uses an estimator.
type AdapterConfig struct {
	// Clone gives every Instance its own unfit copy of the estimator.
	Clone bool

	// PredictProba requires the estimator to produce probabilities.
	PredictProba bool
}

// Adapter hands out estimator instances for bootstrap iterations.
//
// Contract:
// - Concurrency: with Clone enabled, Instance is safe for concurrent use and
//   each returned Fitted is owned by its caller. Without Clone every Instance
//   wraps the same estimator and must be used sequentially.
type Adapter struct {
	est    Estimator
	caps   Capabilities
	config AdapterConfig
}

// NewAdapter resolves est's capabilities and checks them against config.
func NewAdapter(est Estimator, config AdapterConfig) (*Adapter, error) {
	caps, err := Resolve(est)
	if err != nil {
		return nil, err
	}

	if config.Clone && !caps.Clone {
		return nil, fmt.Errorf("%w: cloning requested but %T does not implement Clone", ErrUnsupportedCapability, est)
	}
	if config.PredictProba && !caps.Proba {
		return nil, fmt.Errorf("%w: probabilities requested but %T does not implement PredictProba", ErrUnsupportedCapability, est)
	}

	return &Adapter{est: est, caps: caps, config: config}, nil
}

// Capabilities returns the resolved capabilities.
func (a *Adapter) Capabilities() Capabilities {
	return a.caps
}

// Shared reports whether all instances wrap the same estimator.
func (a *Adapter) Shared() bool {
	return !a.config.Clone
}

// Instance returns the estimator to use for one iteration.
func (a *Adapter) Instance() (*Fitted, error) {
	if !a.config.Clone {
		return &Fitted{est: a.est}, nil
	}

	clone := a.est.(Cloner).Clone()
	if clone == nil {
		return nil, fmt.Errorf("%w: %T.Clone returned nil", ErrUnsupportedCapability, a.est)
	}
	return &Fitted{est: clone}, nil
}

// Fitted is an estimator handle bound to one iteration.
type Fitted struct {
	est Estimator
}

// Estimator returns the underlying estimator.
func (f *Fitted) Estimator() Estimator {
	return f.est
}

// Fit trains on the rows of ds at indices. Nil indices fit on all rows.
func (f *Fitted) Fit(ctx context.Context, ds Dataset, indices []int) error {
	sub := ds.Take(indices)
	if err := f.est.Fit(ctx, sub.X, sub.Y); err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	return nil
}

// Predict returns predictions for the rows of ds at indices. Nil indices
// predict every row.
func (f *Fitted) Predict(ctx context.Context, ds Dataset, indices []int) ([]float64, error) {
	sub := ds.Take(indices)
	pred, err := f.est.Predict(ctx, sub.X)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(pred) != len(sub.X) {
		return nil, fmt.Errorf("%w: predict returned %d values for %d rows", ErrPredictionShape, len(pred), len(sub.X))
	}
	return pred, nil
}

// PredictProba returns probability rows for the rows of ds at indices.
func (f *Fitted) PredictProba(ctx context.Context, ds Dataset, indices []int) ([][]float64, error) {
	pp, ok := f.est.(ProbaPredictor)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not implement PredictProba", ErrUnsupportedCapability, f.est)
	}

	sub := ds.Take(indices)
	proba, err := pp.PredictProba(ctx, sub.X)
	if err != nil {
		return nil, fmt.Errorf("predict proba: %w", err)
	}
	if len(proba) != len(sub.X) {
		return nil, fmt.Errorf("%w: predict proba returned %d rows for %d rows", ErrPredictionShape, len(proba), len(sub.X))
	}
	return proba, nil
}
