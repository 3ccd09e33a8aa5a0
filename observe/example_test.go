package observe_test

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonwraymond/bootscore/observe"
)

func ExampleNewObserver() {
	cfg := observe.Config{
		ServiceName: "bootscore",
		Version:     "0.1.0",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
		Logging:     observe.LoggingConfig{Enabled: true, Level: "warn"},
	}

	ctx := context.Background()
	obs, err := observe.NewObserver(ctx, cfg)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer func() {
		_ = obs.Shutdown(ctx)
	}()

	fmt.Println("Observer created successfully")
	// Output:
	// Observer created successfully
}

func ExampleConfig_Validate() {
	cfg := observe.Config{
		ServiceName: "bootscore",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 2},
	}

	err := cfg.Validate()
	fmt.Println(errors.Is(err, observe.ErrInvalidSamplePct))
	// Output:
	// true
}

func ExampleMiddleware_WrapIteration() {
	mw := observe.NoopMiddleware()
	meta := observe.RunMeta{Method: ".632", Splits: 2}

	iterate := mw.WrapIteration(meta, func(ctx context.Context, index int) (observe.IterationOutcome, error) {
		return observe.IterationOutcome{Attempts: 1, Score: 0.9}, nil
	})

	out, err := iterate(context.Background(), 1)
	fmt.Println(out.Index, out.Score, err)
	// Output:
	// 1 0.9 <nil>
}

func ExampleNewLoggerWithWriter() {
	logger := observe.NewLoggerWithWriter("error", os.Stdout)

	// Below the configured level, nothing is written.
	logger.Info(context.Background(), "bootstrap run completed")
	fmt.Println("done")
	// Output:
	// done
}
