package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Tracer wraps OpenTelemetry tracing with run and iteration spans.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartRun starts the root span of a bootstrap run.
	StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span)

	// StartIteration starts a span for one iteration, child of the span in ctx.
	StartIteration(ctx context.Context, index int) (context.Context, trace.Span)

	// EndSpan sets extra attributes, records err if any and ends the span.
	EndSpan(span trace.Span, err error, attrs ...attribute.KeyValue)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	attrs := append(meta.Attributes(), attribute.Bool("bootscore.error", false))
	return t.tracer.Start(ctx, SpanRun,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) StartIteration(ctx context.Context, index int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanIteration,
		trace.WithAttributes(
			attribute.Int("bootscore.iteration", index),
			attribute.Bool("bootscore.error", false),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("bootscore.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartRun(ctx context.Context, meta RunMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, SpanRun)
}

func (t *noopTracer) StartIteration(ctx context.Context, index int) (context.Context, trace.Span) {
	return t.noop.Start(ctx, SpanIteration)
}

func (t *noopTracer) EndSpan(span trace.Span, err error, attrs ...attribute.KeyValue) {
	span.End()
}
