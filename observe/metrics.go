package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names.
const (
	MetricIterations        = "bootscore.iterations.total"
	MetricIterationErrors   = "bootscore.iterations.errors"
	MetricRedraws           = "bootscore.redraws.total"
	MetricIterationDuration = "bootscore.iteration.duration_ms"
	MetricScore             = "bootscore.score"
	MetricRuns              = "bootscore.runs.total"
	MetricRunErrors         = "bootscore.runs.errors"
)

// Metrics records run and iteration metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordIteration records one finished iteration. The score is only
	// recorded when err is nil.
	RecordIteration(ctx context.Context, meta RunMeta, out IterationOutcome, duration time.Duration, err error)

	// RecordRun records a finished run.
	RecordRun(ctx context.Context, meta RunMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	iterations      metric.Int64Counter
	iterationErrors metric.Int64Counter
	redraws         metric.Int64Counter
	duration        metric.Float64Histogram
	score           metric.Float64Histogram
	runs            metric.Int64Counter
	runErrors       metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	m := &metricsImpl{}
	var err error

	if m.iterations, err = meter.Int64Counter(MetricIterations,
		metric.WithDescription("Completed bootstrap iterations"),
		metric.WithUnit("{iteration}"),
	); err != nil {
		return nil, err
	}
	if m.iterationErrors, err = meter.Int64Counter(MetricIterationErrors,
		metric.WithDescription("Failed bootstrap iterations"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}
	if m.redraws, err = meter.Int64Counter(MetricRedraws,
		metric.WithDescription("Degenerate draws discarded and redrawn"),
		metric.WithUnit("{draw}"),
	); err != nil {
		return nil, err
	}
	if m.duration, err = meter.Float64Histogram(MetricIterationDuration,
		metric.WithDescription("Iteration duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	if m.score, err = meter.Float64Histogram(MetricScore,
		metric.WithDescription("Per-iteration combined score"),
	); err != nil {
		return nil, err
	}
	if m.runs, err = meter.Int64Counter(MetricRuns,
		metric.WithDescription("Bootstrap runs"),
		metric.WithUnit("{run}"),
	); err != nil {
		return nil, err
	}
	if m.runErrors, err = meter.Int64Counter(MetricRunErrors,
		metric.WithDescription("Failed bootstrap runs"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metricsImpl) RecordIteration(ctx context.Context, meta RunMeta, out IterationOutcome, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.metricAttributes()...)

	m.iterations.Add(ctx, 1, opt)
	if r := out.Redraws(); r > 0 {
		m.redraws.Add(ctx, int64(r), opt)
	}
	m.duration.Record(ctx, float64(duration)/float64(time.Millisecond), opt)

	if err != nil {
		m.iterationErrors.Add(ctx, 1, opt)
		return
	}
	m.score.Record(ctx, out.Score, opt)
}

func (m *metricsImpl) RecordRun(ctx context.Context, meta RunMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.metricAttributes()...)
	m.runs.Add(ctx, 1, opt)
	if err != nil {
		m.runErrors.Add(ctx, 1, opt)
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordIteration(context.Context, RunMeta, IterationOutcome, time.Duration, error) {}
func (noopMetrics) RecordRun(context.Context, RunMeta, time.Duration, error)                         {}
