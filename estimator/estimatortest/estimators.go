package estimatortest

import (
	"context"
	"errors"
	"math"
	"sync/atomic"

	"github.com/jonwraymond/bootscore/estimator"
)

// ErrNotFitted is returned by Predict before Fit has succeeded.
var ErrNotFitted = errors.New("estimatortest: estimator is not fitted")

// Constant always predicts Label, fitted or not.
type Constant struct {
	Label float64
}

func (c *Constant) Fit(ctx context.Context, X [][]float64, y []float64) error {
	return nil
}

func (c *Constant) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i := range out {
		out[i] = c.Label
	}
	return out, nil
}

func (c *Constant) Clone() estimator.Estimator {
	return &Constant{Label: c.Label}
}

func (c *Constant) TargetType() estimator.TargetType {
	return estimator.TargetClassification
}

// Majority predicts the most frequent training label. Ties go to the
// smaller label.
type Majority struct {
	// Classes sizes probability rows.
	Classes int

	fitted bool
	label  float64
	freq   []float64
}

func (m *Majority) Fit(ctx context.Context, X [][]float64, y []float64) error {
	counts := make(map[float64]int, m.Classes)
	for _, v := range y {
		counts[v]++
	}

	best, bestCount := math.Inf(1), -1
	for label, n := range counts {
		if n > bestCount || (n == bestCount && label < best) {
			best, bestCount = label, n
		}
	}

	m.freq = make([]float64, m.Classes)
	for label, n := range counts {
		if k := int(label); k >= 0 && k < m.Classes {
			m.freq[k] = float64(n) / float64(len(y))
		}
	}
	m.label = best
	m.fitted = true
	return nil
}

func (m *Majority) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.label
	}
	return out, nil
}

// PredictProba returns the training class frequencies for every row.
func (m *Majority) PredictProba(ctx context.Context, X [][]float64) ([][]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	out := make([][]float64, len(X))
	for i := range out {
		out[i] = append([]float64(nil), m.freq...)
	}
	return out, nil
}

func (m *Majority) Clone() estimator.Estimator {
	return &Majority{Classes: m.Classes}
}

func (m *Majority) TargetType() estimator.TargetType {
	return estimator.TargetClassification
}

// NearestNeighbor is a 1-nearest-neighbour classifier. It scores perfectly
// on its own training rows, which makes it a convenient overfitting model.
type NearestNeighbor struct {
	Classes int

	X [][]float64
	y []float64
}

func (nn *NearestNeighbor) Fit(ctx context.Context, X [][]float64, y []float64) error {
	nn.X = X
	nn.y = y
	return nil
}

func (nn *NearestNeighbor) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	if len(nn.X) == 0 {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i, row := range X {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = nn.y[nn.nearest(row)]
	}
	return out, nil
}

// PredictProba returns a one-hot row for the predicted label.
func (nn *NearestNeighbor) PredictProba(ctx context.Context, X [][]float64) ([][]float64, error) {
	labels, err := nn.Predict(ctx, X)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(labels))
	for i, label := range labels {
		out[i] = make([]float64, nn.Classes)
		if k := int(label); k >= 0 && k < nn.Classes {
			out[i][k] = 1
		}
	}
	return out, nil
}

func (nn *NearestNeighbor) nearest(row []float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, cand := range nn.X {
		d := 0.0
		for j := range row {
			diff := row[j] - cand[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (nn *NearestNeighbor) Clone() estimator.Estimator {
	return &NearestNeighbor{Classes: nn.Classes}
}

func (nn *NearestNeighbor) TargetType() estimator.TargetType {
	return estimator.TargetClassification
}

// MeanRegressor predicts the mean training target.
type MeanRegressor struct {
	fitted bool
	mean   float64
}

func (r *MeanRegressor) Fit(ctx context.Context, X [][]float64, y []float64) error {
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	r.mean = sum / float64(len(y))
	r.fitted = true
	return nil
}

func (r *MeanRegressor) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(X))
	for i := range out {
		out[i] = r.mean
	}
	return out, nil
}

func (r *MeanRegressor) Clone() estimator.Estimator {
	return &MeanRegressor{}
}

func (r *MeanRegressor) TargetType() estimator.TargetType {
	return estimator.TargetRegression
}

// Failing returns FitErr from Fit and PredictErr from Predict. Nil errors
// succeed with zero predictions.
type Failing struct {
	FitErr     error
	PredictErr error
}

func (f *Failing) Fit(ctx context.Context, X [][]float64, y []float64) error {
	return f.FitErr
}

func (f *Failing) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	if f.PredictErr != nil {
		return nil, f.PredictErr
	}
	return make([]float64, len(X)), nil
}

func (f *Failing) Clone() estimator.Estimator {
	return &Failing{FitErr: f.FitErr, PredictErr: f.PredictErr}
}

// Blocking waits in Fit until ctx is done and returns ctx's error.
type Blocking struct{}

func (b *Blocking) Fit(ctx context.Context, X [][]float64, y []float64) error {
	<-ctx.Done()
	return ctx.Err()
}

func (b *Blocking) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	return make([]float64, len(X)), nil
}

func (b *Blocking) Clone() estimator.Estimator {
	return &Blocking{}
}

// Stats is shared by a Counting estimator and all of its clones.
type Stats struct {
	Fits     atomic.Int64
	Predicts atomic.Int64
	Clones   atomic.Int64

	inFlight    atomic.Int64
	maxInFlight atomic.Int64
}

// MaxInFlight returns the highest number of concurrent Fit or Predict calls
// observed.
func (s *Stats) MaxInFlight() int64 {
	return s.maxInFlight.Load()
}

func (s *Stats) enter() {
	n := s.inFlight.Add(1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			return
		}
	}
}

func (s *Stats) leave() {
	s.inFlight.Add(-1)
}

// Counting wraps Inner and records calls in Stats. Clone returns nil when
// Inner does not implement estimator.Cloner.
type Counting struct {
	Inner estimator.Estimator
	Stats *Stats
}

func (c *Counting) Fit(ctx context.Context, X [][]float64, y []float64) error {
	c.Stats.enter()
	defer c.Stats.leave()
	c.Stats.Fits.Add(1)
	return c.Inner.Fit(ctx, X, y)
}

func (c *Counting) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	c.Stats.enter()
	defer c.Stats.leave()
	c.Stats.Predicts.Add(1)
	return c.Inner.Predict(ctx, X)
}

func (c *Counting) Clone() estimator.Estimator {
	cloner, ok := c.Inner.(estimator.Cloner)
	if !ok {
		return nil
	}
	c.Stats.Clones.Add(1)
	return &Counting{Inner: cloner.Clone(), Stats: c.Stats}
}

var (
	_ estimator.ProbaPredictor = (*Majority)(nil)
	_ estimator.ProbaPredictor = (*NearestNeighbor)(nil)
	_ estimator.Cloner         = (*Counting)(nil)
	_ estimator.Typed          = (*MeanRegressor)(nil)
)
