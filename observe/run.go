package observe

import (
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

// Span names.
const (
	SpanRun       = "bootscore.run"
	SpanIteration = "bootscore.iteration"
)

// RunMeta describes one bootstrap run for telemetry purposes.
type RunMeta struct {
	Estimator string // estimator type name
	Method    string // oob, .632 or .632+
	Scorer    string // scorer name
	Splits    int
	Samples   int
	Seed      uint64
	Workers   int
}

// Attributes returns the span attributes for the run.
func (m RunMeta) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("bootscore.estimator", m.Estimator),
		attribute.String("bootscore.method", m.Method),
		attribute.String("bootscore.scorer", m.Scorer),
		attribute.Int("bootscore.splits", m.Splits),
		attribute.Int("bootscore.samples", m.Samples),
		// uint64 does not fit an int64 attribute.
		attribute.String("bootscore.seed", strconv.FormatUint(m.Seed, 10)),
		attribute.Int("bootscore.workers", m.Workers),
	}
}

// metricAttributes is the low-cardinality subset used on instruments.
func (m RunMeta) metricAttributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("bootscore.estimator", m.Estimator),
		attribute.String("bootscore.method", m.Method),
		attribute.String("bootscore.scorer", m.Scorer),
	}
}

func (m RunMeta) fields() []Field {
	return []Field{
		{Key: "estimator", Value: m.Estimator},
		{Key: "method", Value: m.Method},
		{Key: "scorer", Value: m.Scorer},
		{Key: "splits", Value: m.Splits},
		{Key: "samples", Value: m.Samples},
		{Key: "seed", Value: m.Seed},
		{Key: "workers", Value: m.Workers},
	}
}

// IterationOutcome is what a finished iteration reports back to telemetry.
type IterationOutcome struct {
	Index    int
	Attempts int // draws taken, 1 when no redraw happened
	OOBSize  int
	Score    float64
}

// Redraws returns the number of degenerate draws discarded.
func (o IterationOutcome) Redraws() int {
	if o.Attempts <= 1 {
		return 0
	}
	return o.Attempts - 1
}
