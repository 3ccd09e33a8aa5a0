package observe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t testing.TB) (*metricsImpl, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := newMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("newMetrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// counterValue returns the summed value of an int64 counter, or -1 when absent.
func counterValue(rm metricdata.ResourceMetrics, name string) int64 {
	m := findMetric(rm, name)
	if m == nil {
		return -1
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		return -1
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

var testMeta = RunMeta{Estimator: "Majority", Method: ".632", Scorer: "accuracy", Splits: 3, Samples: 10}

func TestMetrics_RecordIteration(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordIteration(ctx, testMeta, IterationOutcome{Attempts: 1, Score: 0.8}, 5*time.Millisecond, nil)
	m.RecordIteration(ctx, testMeta, IterationOutcome{Attempts: 3, Score: 0.6}, 5*time.Millisecond, nil)
	m.RecordIteration(ctx, testMeta, IterationOutcome{Attempts: 1}, time.Millisecond, errors.New("fit failed"))

	rm := collect(t, reader)

	if got := counterValue(rm, MetricIterations); got != 3 {
		t.Errorf("%s = %d, want 3", MetricIterations, got)
	}
	if got := counterValue(rm, MetricIterationErrors); got != 1 {
		t.Errorf("%s = %d, want 1", MetricIterationErrors, got)
	}
	if got := counterValue(rm, MetricRedraws); got != 2 {
		t.Errorf("%s = %d, want 2", MetricRedraws, got)
	}

	score := findMetric(rm, MetricScore)
	if score == nil {
		t.Fatalf("%s not found", MetricScore)
	}
	hist := score.Data.(metricdata.Histogram[float64])
	if hist.DataPoints[0].Count != 2 {
		t.Errorf("score count = %d, want 2 (failed iteration excluded)", hist.DataPoints[0].Count)
	}
	if sum := hist.DataPoints[0].Sum; sum < 1.39 || sum > 1.41 {
		t.Errorf("score sum = %v, want 1.4", sum)
	}

	dur := findMetric(rm, MetricIterationDuration)
	if dur == nil {
		t.Fatalf("%s not found", MetricIterationDuration)
	}
	if c := dur.Data.(metricdata.Histogram[float64]).DataPoints[0].Count; c != 3 {
		t.Errorf("duration count = %d, want 3", c)
	}
}

func TestMetrics_RecordRun(t *testing.T) {
	m, reader := newTestMetrics(t)
	m.RecordRun(context.Background(), testMeta, time.Second, nil)
	m.RecordRun(context.Background(), testMeta, time.Second, errors.New("degenerate"))

	rm := collect(t, reader)
	if got := counterValue(rm, MetricRuns); got != 2 {
		t.Errorf("%s = %d, want 2", MetricRuns, got)
	}
	if got := counterValue(rm, MetricRunErrors); got != 1 {
		t.Errorf("%s = %d, want 1", MetricRunErrors, got)
	}
}

func TestMetrics_Labels(t *testing.T) {
	m, reader := newTestMetrics(t)
	m.RecordIteration(context.Background(), testMeta, IterationOutcome{Attempts: 1}, 0, nil)

	rm := collect(t, reader)
	sum := findMetric(rm, MetricIterations).Data.(metricdata.Sum[int64])
	attrs := sum.DataPoints[0].Attributes

	for k, want := range map[attribute.Key]string{
		"bootscore.estimator": "Majority",
		"bootscore.method":    ".632",
		"bootscore.scorer":    "accuracy",
	} {
		v, ok := attrs.Value(k)
		if !ok || v.AsString() != want {
			t.Errorf("attribute %s = %v, want %q", k, v.AsString(), want)
		}
	}
	if _, ok := attrs.Value("bootscore.seed"); ok {
		t.Error("seed must not be used as a metric label")
	}
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	m, reader := newTestMetrics(t)

	const workers = 16
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordIteration(context.Background(), testMeta, IterationOutcome{Index: i, Attempts: 1}, time.Millisecond, nil)
		}()
	}
	wg.Wait()

	if got := counterValue(collect(t, reader), MetricIterations); got != workers {
		t.Errorf("%s = %d, want %d", MetricIterations, got, workers)
	}
}

func TestIterationOutcome_Redraws(t *testing.T) {
	for attempts, want := range map[int]int{0: 0, 1: 0, 2: 1, 64: 63} {
		if got := (IterationOutcome{Attempts: attempts}).Redraws(); got != want {
			t.Errorf("Redraws(%d) = %d, want %d", attempts, got, want)
		}
	}
}

// findMetric searches for a metric by name in ResourceMetrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}
