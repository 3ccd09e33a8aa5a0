package combine

import (
	"math"

	"github.com/jonwraymond/bootscore/scoring"
)

const (
	// Weight632 is the out-of-bag weight of the .632 estimator.
	Weight632 = 0.632

	// WeightTrain632 is the whole-sample weight of the .632 estimator.
	WeightTrain632 = 1 - Weight632
)

// Inputs holds one iteration's measurements.
type Inputs struct {
	// OOBScore is the score on out-of-bag samples.
	OOBScore float64

	// TrainScore is the score on the whole original sample.
	// Ignored by MethodOOB.
	TrainScore float64

	// NoInformation is the no-information error rate.
	// Only used by Method632Plus.
	NoInformation float64
}

// Result is one iteration's combined estimate.
type Result struct {
	// Score is the combined score in the scorer's units.
	Score float64

	// Weight is the out-of-bag weight that produced Score.
	Weight float64

	// Rate is the relative overfitting rate. Zero unless Method632Plus.
	Rate float64
}

// Combine folds in into a single score for method. kind decides how scores
// map to errors for the .632+ rate.
func Combine(method Method, kind scoring.Kind, in Inputs) Result {
	switch method {
	case Method632:
		return weighted(in, Weight632, 0)

	case Method632Plus:
		s := scoring.Scorer{Kind: kind}
		rate := OverfittingRate(s.Error(in.OOBScore), s.Error(in.TrainScore), in.NoInformation)
		return weighted(in, Weight632Plus(rate), rate)

	default:
		return Result{Score: in.OOBScore, Weight: 1}
	}
}

func weighted(in Inputs, weight, rate float64) Result {
	return Result{
		Score:  weight*in.OOBScore + (1-weight)*in.TrainScore,
		Weight: weight,
		Rate:   rate,
	}
}

// OverfittingRate returns the relative overfitting rate
//
//	R = (errOOB - errTrain) / (gamma - errOOB)
//
// clamped to [0, 1]. A negative rate, a zero denominator and non-finite
// values all yield 0.
func OverfittingRate(errOOB, errTrain, gamma float64) float64 {
	denom := gamma - errOOB
	if denom == 0 {
		return 0
	}

	r := (errOOB - errTrain) / denom
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0) || r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// Weight632Plus returns the .632+ out-of-bag weight for rate r in [0, 1]:
// 0.632 at r=0 rising to 1 at r=1.
func Weight632Plus(r float64) float64 {
	return Weight632 / (1 - WeightTrain632*r)
}
