package observe

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

type fixture struct {
	mw     *Middleware
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	logs   *bytes.Buffer
}

func newFixture(t *testing.T, level string) *fixture {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	metrics, reader := newTestMetrics(t)
	logs := &bytes.Buffer{}
	return &fixture{
		mw:     NewMiddleware(newTracer(tp.Tracer("test")), metrics, NewLoggerWithWriter(level, logs)),
		spans:  spans,
		reader: reader,
		logs:   logs,
	}
}

func TestMiddleware_RunWithIterations(t *testing.T) {
	f := newFixture(t, "debug")
	meta := RunMeta{Estimator: "Majority", Method: "oob", Scorer: "accuracy", Splits: 3}

	iterate := f.mw.WrapIteration(meta, func(ctx context.Context, i int) (IterationOutcome, error) {
		if !trace.SpanContextFromContext(ctx).IsValid() {
			t.Error("iteration ctx carries no span")
		}
		return IterationOutcome{Attempts: 1, OOBSize: 4, Score: float64(i) / 10}, nil
	})
	run := f.mw.WrapRun(meta, func(ctx context.Context) error {
		for i := range meta.Splits {
			if _, err := iterate(ctx, i); err != nil {
				return err
			}
		}
		return nil
	})

	if err := run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	ended := f.spans.Ended()
	if len(ended) != 4 {
		t.Fatalf("got %d spans, want 4", len(ended))
	}
	root := ended[3]
	for _, s := range ended[:3] {
		if s.Parent().SpanID() != root.SpanContext().SpanID() {
			t.Errorf("span %q not parented to run span", s.Name())
		}
	}

	rm := collect(t, f.reader)
	if got := counterValue(rm, MetricIterations); got != 3 {
		t.Errorf("iterations = %d, want 3", got)
	}
	if got := counterValue(rm, MetricRuns); got != 1 {
		t.Errorf("runs = %d, want 1", got)
	}

	entries := decodeLines(t, f.logs)
	if len(entries) != 4 {
		t.Fatalf("got %d log entries, want 4", len(entries))
	}
	for _, e := range entries[:3] {
		if e["msg"] != "bootstrap iteration completed" || e["level"] != "debug" {
			t.Errorf("iteration entry = %v", e)
		}
		if e["estimator"] != "Majority" || e["method"] != "oob" || e["scorer"] != "accuracy" {
			t.Errorf("iteration entry lacks run fields: %v", e)
		}
	}
	last := entries[3]
	if last["msg"] != "bootstrap run completed" || last["method"] != "oob" {
		t.Errorf("last entry = %v", last)
	}
}

func TestMiddleware_IterationError(t *testing.T) {
	f := newFixture(t, "info")
	wantErr := errors.New("fit: singular matrix")

	iterate := f.mw.WrapIteration(RunMeta{Estimator: "Failing", Method: ".632"}, func(context.Context, int) (IterationOutcome, error) {
		return IterationOutcome{Attempts: 2}, wantErr
	})
	out, err := iterate(context.Background(), 5)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if out.Index != 5 {
		t.Errorf("Index = %d, want 5", out.Index)
	}

	rm := collect(t, f.reader)
	if got := counterValue(rm, MetricIterationErrors); got != 1 {
		t.Errorf("iteration errors = %d, want 1", got)
	}
	if got := counterValue(rm, MetricRedraws); got != 1 {
		t.Errorf("redraws = %d, want 1", got)
	}

	entries := decodeLines(t, f.logs)
	if len(entries) != 1 || entries[0]["level"] != "error" || entries[0]["error"] != wantErr.Error() {
		t.Fatalf("entries = %v", entries)
	}
	if entries[0]["estimator"] != "Failing" || entries[0]["method"] != ".632" {
		t.Errorf("failed iteration entry lacks run fields: %v", entries[0])
	}
}

func TestMiddleware_RunErrorUnchanged(t *testing.T) {
	f := newFixture(t, "info")
	wantErr := errors.New("degenerate sample")

	err := f.mw.WrapRun(RunMeta{}, func(context.Context) error { return wantErr })(context.Background())
	if err != wantErr {
		t.Fatalf("err = %v, want identical %v", err, wantErr)
	}
	if got := counterValue(collect(t, f.reader), MetricRunErrors); got != 1 {
		t.Errorf("run errors = %d, want 1", got)
	}
}

func TestMiddleware_SuccessfulIterationsQuietAtInfo(t *testing.T) {
	f := newFixture(t, "info")
	iterate := f.mw.WrapIteration(RunMeta{}, func(context.Context, int) (IterationOutcome, error) {
		return IterationOutcome{Attempts: 1}, nil
	})
	for i := range 10 {
		if _, err := iterate(context.Background(), i); err != nil {
			t.Fatal(err)
		}
	}
	if f.logs.Len() != 0 {
		t.Errorf("expected no info-level output, got %q", f.logs.String())
	}
}

func TestMiddleware_Logger(t *testing.T) {
	f := newFixture(t, "info")
	f.mw.Logger(RunMeta{Scorer: "log_loss"}).Warn(context.Background(), "warning")

	e := decodeLines(t, f.logs)[0]
	if e["scorer"] != "log_loss" {
		t.Errorf("scorer = %v", e["scorer"])
	}
}
