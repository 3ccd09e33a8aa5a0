package bootscore

import (
	"fmt"
	"time"

	"github.com/jonwraymond/bootscore/combine"
	"github.com/jonwraymond/bootscore/observe"
	"github.com/jonwraymond/bootscore/resample"
	"github.com/jonwraymond/bootscore/resilience"
	"github.com/jonwraymond/bootscore/scoring"
)

// Defaults.
const (
	DefaultSplits  = 200
	DefaultMethod  = combine.Method632
	DefaultWorkers = 1
)

// DegeneratePolicy decides what happens when a draw leaves no out-of-bag
// samples.
type DegeneratePolicy int

const (
	// Redraw discards the draw and draws again from the next attempt's
	// stream, up to the configured maximum.
	Redraw DegeneratePolicy = iota
	// Fail aborts the run with ErrDegenerateSample.
	Fail
)

// ParseDegeneratePolicy parses "redraw" or "fail". Empty selects Redraw.
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch s {
	case "redraw", "":
		return Redraw, nil
	case "fail":
		return Fail, nil
	default:
		return 0, fmt.Errorf("%w: unknown degenerate policy %q", ErrConfiguration, s)
	}
}

func (p DegeneratePolicy) String() string {
	switch p {
	case Redraw:
		return "redraw"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
}

// settings is the resolved run configuration.
type settings struct {
	splits           int
	method           combine.Method
	scorer           scoring.Scorer
	proba            bool
	seed             uint64
	seedSet          bool
	clone            bool
	trainScore       bool
	workers          int
	policy           DegeneratePolicy
	maxAttempts      int
	iterationTimeout time.Duration
	bulkhead         *resilience.Bulkhead
	observer         observe.Observer
	logger           observe.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		splits:      DefaultSplits,
		method:      DefaultMethod,
		clone:       true,
		workers:     DefaultWorkers,
		policy:      Redraw,
		maxAttempts: resample.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Option configures a run.
type Option func(*settings)

// WithSplits sets the number of bootstrap iterations. Must be greater than one.
// Default: 200
func WithSplits(n int) Option {
	return func(s *settings) {
		s.splits = n
	}
}

// WithMethod selects how out-of-bag and whole-sample scores are combined.
// Default: .632
func WithMethod(m combine.Method) Option {
	return func(s *settings) {
		s.method = m
	}
}

// WithScorer sets the scoring function. By default accuracy is used for
// class labels, mean squared error for continuous targets and log loss for
// probabilities.
func WithScorer(sc scoring.Scorer) Option {
	return func(s *settings) {
		s.scorer = sc
	}
}

// WithPredictProba scores probability predictions instead of labels. The
// estimator must implement estimator.ProbaPredictor.
func WithPredictProba(enabled bool) Option {
	return func(s *settings) {
		s.proba = enabled
	}
}

// WithSeed fixes the seed keying every random stream. Without it a seed is
// drawn from entropy and recorded in the Report.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seedSet = true
	}
}

// WithClone controls whether each iteration fits its own unfit copy of the
// estimator. Disabling it refits one shared estimator and forces sequential
// execution.
// Default: true
func WithClone(enabled bool) Option {
	return func(s *settings) {
		s.clone = enabled
	}
}

// WithTrainScore records the whole-sample score in oob runs too, so their
// reports can be recombined as .632. .632 and .632+ runs always record it.
// Default: false
func WithTrainScore(enabled bool) Option {
	return func(s *settings) {
		s.trainScore = enabled
	}
}

// WithWorkers sets how many iterations run concurrently.
// Default: 1
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// WithDegeneratePolicy sets the handling of draws with an empty out-of-bag set.
// Default: Redraw
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithMaxDrawAttempts bounds the draws tried per iteration under Redraw.
// Default: 64
func WithMaxDrawAttempts(n int) Option {
	return func(s *settings) {
		s.maxAttempts = n
	}
}

// WithIterationTimeout bounds the fit and predict work of one iteration.
// Zero means no limit.
func WithIterationTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.iterationTimeout = d
	}
}

// WithBulkhead caps concurrent fits with b. Sharing one bulkhead across runs
// caps their combined load.
func WithBulkhead(b *resilience.Bulkhead) Option {
	return func(s *settings) {
		s.bulkhead = b
	}
}

// WithObserver records traces, metrics and logs through obs.
func WithObserver(obs observe.Observer) Option {
	return func(s *settings) {
		s.observer = obs
	}
}

// WithLogger sets the logger, overriding the observer's.
func WithLogger(l observe.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
