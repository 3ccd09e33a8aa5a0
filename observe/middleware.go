package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// RunFunc executes a whole bootstrap run.
type RunFunc func(ctx context.Context) error

// IterationFunc executes one bootstrap iteration.
type IterationFunc func(ctx context.Context, index int) (IterationOutcome, error)

// Middleware wraps runs and iterations with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: wrapped functions are safe to call concurrently.
//   - Context: the span is propagated through ctx to the wrapped function.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware from its components. Nil components
// are replaced with no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{tracer: tracer, metrics: metrics, logger: logger}
}

// NoopMiddleware returns a Middleware that records nothing.
func NoopMiddleware() *Middleware {
	return NewMiddleware(nil, nil, nil)
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// WithLogger returns a copy of m that logs through l.
func (m *Middleware) WithLogger(l Logger) *Middleware {
	if l == nil {
		return m
	}
	cp := *m
	cp.logger = l
	return &cp
}

// Logger returns the logger scoped to meta.
func (m *Middleware) Logger(meta RunMeta) Logger {
	return m.logger.WithRun(meta)
}

// WrapRun wraps a whole run in a run span and records its outcome.
func (m *Middleware) WrapRun(meta RunMeta, fn RunFunc) RunFunc {
	return func(ctx context.Context) error {
		ctx, span := m.tracer.StartRun(ctx, meta)
		start := time.Now()

		err := fn(ctx)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordRun(ctx, meta, duration, err)

		log := m.logger.WithRun(meta)
		fields := []Field{{Key: "duration_ms", Value: float64(duration.Milliseconds())}}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			log.Error(ctx, "bootstrap run failed", fields...)
		} else {
			log.Info(ctx, "bootstrap run completed", fields...)
		}
		return err
	}
}

// WrapIteration wraps one iteration in an iteration span and records its
// outcome. Successful iterations are logged at debug level.
func (m *Middleware) WrapIteration(meta RunMeta, fn IterationFunc) IterationFunc {
	return func(ctx context.Context, index int) (IterationOutcome, error) {
		ctx, span := m.tracer.StartIteration(ctx, index)
		start := time.Now()

		out, err := fn(ctx, index)
		out.Index = index

		duration := time.Since(start)
		m.tracer.EndSpan(span, err,
			attribute.Int("bootscore.attempts", out.Attempts),
			attribute.Int("bootscore.oob_size", out.OOBSize),
		)
		m.metrics.RecordIteration(ctx, meta, out, duration, err)

		fields := []Field{
			{Key: "iteration", Value: index},
			{Key: "attempts", Value: out.Attempts},
			{Key: "oob_size", Value: out.OOBSize},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		log := m.logger.WithRun(meta)
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			log.Error(ctx, "bootstrap iteration failed", fields...)
		} else {
			fields = append(fields, Field{Key: "score", Value: out.Score})
			log.Debug(ctx, "bootstrap iteration completed", fields...)
		}
		return out, err
	}
}
