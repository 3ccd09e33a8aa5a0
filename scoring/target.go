package scoring

import (
	"math"

	"github.com/jonwraymond/bootscore/estimator"
)

// InferTargetType classifies targets as class labels when every value is a
// finite integer, and as continuous otherwise.
func InferTargetType(y []float64) estimator.TargetType {
	if len(y) == 0 {
		return estimator.TargetUnknown
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return estimator.TargetRegression
		}
	}
	return estimator.TargetClassification
}

// ResolveTargetType prefers the estimator's declared type and falls back to
// inferring it from y.
func ResolveTargetType(caps estimator.Capabilities, y []float64) estimator.TargetType {
	if caps.TargetType != estimator.TargetUnknown {
		return caps.TargetType
	}
	return InferTargetType(y)
}
