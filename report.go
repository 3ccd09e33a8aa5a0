package bootscore

import (
	"fmt"

	"github.com/jonwraymond/bootscore/combine"
	"github.com/jonwraymond/bootscore/estimator"
	"github.com/jonwraymond/bootscore/scoring"
)

// Iteration holds the measurements of one bootstrap iteration.
type Iteration struct {
	Index int

	// Attempts is the number of draws taken; above one means degenerate
	// draws were redrawn.
	Attempts int

	// OOBSize is the number of distinct samples left out of the draw.
	OOBSize int

	// OOBScore is the score on the out-of-bag samples.
	OOBScore float64

	// TrainScore is the score on the whole original sample.
	// Zero for the oob method unless WithTrainScore was set.
	TrainScore float64

	// NoInformation is the no-information error rate.
	// Zero unless the method is .632+.
	NoInformation float64

	// Rate is the relative overfitting rate of .632+.
	Rate float64

	// Weight is the out-of-bag weight used for Score.
	Weight float64

	// Score is the combined score.
	Score float64
}

// Report is the full result of a run.
type Report struct {
	// Scores holds one combined score per iteration, in iteration order.
	Scores []float64

	Iterations []Iteration

	// Seed is the seed that keyed every random stream. Passing it to
	// WithSeed reproduces the run.
	Seed uint64

	Method combine.Method

	// TrainScored reports whether every Iteration carries its TrainScore.
	TrainScored bool

	Scorer     string
	ScorerKind scoring.Kind
	TargetType estimator.TargetType
}

// Recombine recomputes the scores of every iteration under method from the
// stored measurements. The report must carry what method needs: .632 needs
// training scores (a .632 or .632+ run, or an oob run with WithTrainScore),
// .632+ needs a .632+ run.
func (r *Report) Recombine(method combine.Method) ([]float64, error) {
	switch {
	case !method.Valid():
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, combine.ErrUnknownMethod)
	case method.NeedsTrainScore() && !r.TrainScored,
		method.NeedsNoInformation() && !r.Method.NeedsNoInformation():
		return nil, fmt.Errorf("%w: a %s report cannot be recombined as %s", ErrConfiguration, r.Method, method)
	}

	scores := make([]float64, len(r.Iterations))
	for i, it := range r.Iterations {
		scores[i] = combine.Combine(method, r.ScorerKind, combine.Inputs{
			OOBScore:      it.OOBScore,
			TrainScore:    it.TrainScore,
			NoInformation: it.NoInformation,
		}).Score
	}
	return scores, nil
}

// Summary summarizes the report's scores with a percentile interval at
// confidence level.
func (r *Report) Summary(level float64) (Summary, error) {
	return Summarize(r.Scores, level)
}
