package bootscore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/bootscore/combine"
	"github.com/jonwraymond/bootscore/estimator"
	"github.com/jonwraymond/bootscore/observe"
	"github.com/jonwraymond/bootscore/resample"
	"github.com/jonwraymond/bootscore/resilience"
	"github.com/jonwraymond/bootscore/scoring"
)

// Run performs the bootstrap and returns one score per iteration, in
// iteration order. Scores are in the scorer's units.
func Run(ctx context.Context, est estimator.Estimator, X [][]float64, y []float64, opts ...Option) ([]float64, error) {
	rep, err := Evaluate(ctx, est, X, y, opts...)
	if err != nil {
		return nil, err
	}
	return rep.Scores, nil
}

// Evaluate performs the bootstrap and returns the scores together with the
// per-iteration measurements.
//
// The whole configuration is validated before the first iteration. The
// first iteration error aborts the run and no partial results are returned.
func Evaluate(ctx context.Context, est estimator.Estimator, X [][]float64, y []float64, opts ...Option) (*Report, error) {
	r, err := newRunner(est, estimator.Dataset{X: X, Y: y}, newSettings(opts))
	if err != nil {
		return nil, err
	}
	return r.run(ctx)
}

// runner holds the validated state of one run.
type runner struct {
	cfg     settings
	ds      estimator.Dataset
	adapter *estimator.Adapter
	scorer  scoring.Scorer
	target  estimator.TargetType
	seed    uint64
	workers int

	fits *resilience.Executor

	mw   *observe.Middleware
	meta observe.RunMeta
	log  observe.Logger

	materialized sync.Once
}

func newRunner(est estimator.Estimator, ds estimator.Dataset, cfg settings) (*runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	adapter, err := estimator.NewAdapter(est, estimator.AdapterConfig{
		Clone:        cfg.clone,
		PredictProba: cfg.proba,
	})
	if err != nil {
		if errors.Is(err, estimator.ErrNilEstimator) {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return nil, err
	}

	target := scoring.ResolveTargetType(adapter.Capabilities(), ds.Y)
	scorer := cfg.scorer
	if scorer.IsZero() {
		scorer = scoring.Default(target, cfg.proba)
	}
	if err := scorer.Validate(target, cfg.proba); err != nil {
		return nil, err
	}

	r := &runner{
		cfg:     cfg,
		ds:      ds,
		adapter: adapter,
		scorer:  scorer,
		target:  target,
		seed:    cfg.seed,
		workers: cfg.workers,
	}
	if !cfg.seedSet {
		r.seed = resample.EntropySeed()
	}

	r.mw = observe.NoopMiddleware()
	if cfg.observer != nil {
		if r.mw, err = observe.MiddlewareFromObserver(cfg.observer); err != nil {
			return nil, fmt.Errorf("observer: %w", err)
		}
	}
	r.mw = r.mw.WithLogger(cfg.logger)

	r.meta = observe.RunMeta{
		Estimator: fmt.Sprintf("%T", est),
		Method:    cfg.method.String(),
		Scorer:    scorer.Name,
		Splits:    cfg.splits,
		Samples:   ds.Len(),
		Seed:      r.seed,
		Workers:   r.workers,
	}
	r.log = r.mw.Logger(r.meta)

	var fitOpts []resilience.ExecutorOption
	if cfg.bulkhead != nil {
		fitOpts = append(fitOpts, resilience.WithBulkhead(cfg.bulkhead))
	}
	fitOpts = append(fitOpts, resilience.WithTimeout(cfg.iterationTimeout))
	r.fits = resilience.NewExecutor(fitOpts...)

	return r, nil
}

func (s settings) validate() error {
	switch {
	case s.splits < 2:
		return fmt.Errorf("%w: splits must be greater than one, got %d", ErrConfiguration, s.splits)
	case !s.method.Valid():
		return fmt.Errorf("%w: %w", ErrConfiguration, combine.ErrUnknownMethod)
	case s.workers < 1:
		return fmt.Errorf("%w: workers must be at least one, got %d", ErrConfiguration, s.workers)
	case s.maxAttempts < 1:
		return fmt.Errorf("%w: max draw attempts must be at least one, got %d", ErrConfiguration, s.maxAttempts)
	case s.policy != Redraw && s.policy != Fail:
		return fmt.Errorf("%w: unknown degenerate policy %v", ErrConfiguration, s.policy)
	case s.iterationTimeout < 0:
		return fmt.Errorf("%w: negative iteration timeout %v", ErrConfiguration, s.iterationTimeout)
	}
	return nil
}

func (r *runner) run(ctx context.Context) (*Report, error) {
	if r.adapter.Shared() && r.workers > 1 {
		r.log.Warn(ctx, "estimator is shared between iterations, running sequentially",
			observe.Field{Key: "requested_workers", Value: r.workers})
		r.workers = 1
	}

	rep := &Report{
		Iterations:  make([]Iteration, r.cfg.splits),
		Seed:        r.seed,
		Method:      r.cfg.method,
		TrainScored: r.cfg.method.NeedsTrainScore() || r.cfg.trainScore,
		Scorer:      r.scorer.Name,
		ScorerKind:  r.scorer.Kind,
		TargetType:  r.target,
	}

	iterate := r.mw.WrapIteration(r.meta, func(ctx context.Context, i int) (observe.IterationOutcome, error) {
		it, err := r.iteration(ctx, i)
		out := observe.IterationOutcome{Attempts: it.Attempts, OOBSize: it.OOBSize, Score: it.Score}
		if err != nil {
			return out, err
		}
		rep.Iterations[i] = it
		return out, nil
	})

	run := r.mw.WrapRun(r.meta, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)

		stopped := false
		for i := range r.cfg.splits {
			if gctx.Err() != nil {
				stopped = true
				break
			}
			g.Go(func() error {
				_, err := iterate(gctx, i)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		if stopped {
			return ctx.Err()
		}
		return nil
	})

	if err := run(ctx); err != nil {
		return nil, err
	}

	rep.Scores = make([]float64, len(rep.Iterations))
	for i, it := range rep.Iterations {
		rep.Scores[i] = it.Score
	}
	return rep, nil
}

// iteration draws the bootstrap sample for i and measures one fitted model.
func (r *runner) iteration(ctx context.Context, i int) (Iteration, error) {
	it := Iteration{Index: i}

	draw, attempts, err := resample.DrawWithRetry(ctx, r.draws(ctx, i), r.seed, i, r.ds.Len())
	it.Attempts = attempts
	if err != nil {
		return it, fmt.Errorf("iteration %d: %w", i, err)
	}
	it.OOBSize = len(draw.OOB)

	var m measurement
	err = r.fits.Execute(ctx, func(ctx context.Context) error {
		res, err := r.measure(ctx, draw)
		if err != nil {
			return err
		}
		m = res
		return nil
	})
	if err != nil {
		return it, fmt.Errorf("iteration %d: %w", i, err)
	}

	res := combine.Combine(r.cfg.method, r.scorer.Kind, combine.Inputs{
		OOBScore:      m.oob,
		TrainScore:    m.train,
		NoInformation: m.noInformation,
	})
	it.OOBScore = m.oob
	it.TrainScore = m.train
	it.NoInformation = m.noInformation
	it.Rate = res.Rate
	it.Weight = res.Weight
	it.Score = res.Score
	return it, nil
}

// draws returns the retry deciding which draws of iteration i are redrawn.
// Under Fail the first degenerate draw ends the iteration.
func (r *runner) draws(ctx context.Context, i int) *resilience.Retry {
	if r.cfg.policy == Fail {
		return resilience.NewRetry(resilience.RetryConfig{
			MaxAttempts: 1,
			RetryIf:     func(error) bool { return false },
		})
	}
	return resample.NewRedraw(r.cfg.maxAttempts, func(attempt int, err error) {
		r.log.Debug(ctx, "degenerate bootstrap sample, redrawing",
			observe.Field{Key: "iteration", Value: i},
			observe.Field{Key: "attempt", Value: attempt + 1})
	})
}

type measurement struct {
	oob           float64
	train         float64
	noInformation float64
}

// measure fits a fresh instance on the bootstrap sample and scores it.
func (r *runner) measure(ctx context.Context, draw resample.Draw) (measurement, error) {
	var m measurement

	inst, err := r.adapter.Instance()
	if err != nil {
		return m, err
	}
	if err := inst.Fit(ctx, r.ds, draw.Train); err != nil {
		return m, err
	}

	yOOB := r.ds.Take(draw.OOB).Y
	if m.oob, err = r.score(ctx, inst, yOOB, draw.OOB, nil); err != nil {
		return m, err
	}
	if !r.cfg.method.NeedsTrainScore() && !r.cfg.trainScore {
		return m, nil
	}

	var ni combine.NoInformation
	wantNI := r.cfg.method.NeedsNoInformation()
	m.train, err = r.score(ctx, inst, r.ds.Y, nil, func(pred []float64, proba [][]float64) {
		if !wantNI {
			return
		}
		if r.cfg.proba {
			ni = combine.NoInformationRateProba(r.scorer, r.ds.Y, proba)
		} else {
			ni = combine.NoInformationRate(r.scorer, r.ds.Y, pred)
		}
	})
	if err != nil {
		return m, err
	}

	if ni.Materialized {
		r.materialized.Do(func() {
			r.log.Warn(ctx, "scorer is not decomposable, no-information rate built the full n*n product",
				observe.Field{Key: "pairs", Value: r.ds.Len() * r.ds.Len()})
		})
	}
	m.noInformation = ni.Rate
	return m, nil
}

// score predicts the rows at indices and scores them against yTrue. Nil
// indices score the whole sample. use, when set, sees the raw predictions.
func (r *runner) score(ctx context.Context, inst *estimator.Fitted, yTrue []float64, indices []int, use func([]float64, [][]float64)) (float64, error) {
	if r.cfg.proba {
		proba, err := inst.PredictProba(ctx, r.ds, indices)
		if err != nil {
			return 0, err
		}
		if use != nil {
			use(nil, proba)
		}
		return r.scorer.Proba(yTrue, proba), nil
	}

	pred, err := inst.Predict(ctx, r.ds, indices)
	if err != nil {
		return 0, err
	}
	if use != nil {
		use(pred, nil)
	}
	return r.scorer.Func(yTrue, pred), nil
}
