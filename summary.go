package bootscore

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// DefaultConfidenceLevel is the conventional 95% level.
const DefaultConfidenceLevel = 0.95

// Summary describes a sequence of bootstrap scores.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64

	// Level is the confidence level of [Lower, Upper].
	Level float64
	Lower float64
	Upper float64
}

// Summarize returns the mean, sample standard deviation and the percentile
// interval of scores at confidence level, which must lie in (0, 1).
func Summarize(scores []float64, level float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, fmt.Errorf("%w: no scores to summarize", ErrConfiguration)
	}
	if !(level > 0 && level < 1) {
		return Summary{}, fmt.Errorf("%w: confidence level must be in (0, 1), got %v", ErrConfiguration, level)
	}

	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	alpha := (1 - level) / 2
	s := Summary{
		N:     len(scores),
		Mean:  stat.Mean(sorted, nil),
		Level: level,
		Lower: stat.Quantile(alpha, stat.Empirical, sorted, nil),
		Upper: stat.Quantile(1-alpha, stat.Empirical, sorted, nil),
	}
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s, nil
}
