// Package resilience guards the execution of bootstrap iterations.
//
// Two building blocks are used:
//
//   - Retry: re-runs an operation with a new attempt number when it fails
//     with a retryable error, such as a degenerate bootstrap draw. The
//     attempt number keys the next random stream, so retries stay
//     reproducible.
//
//   - Executor: runs fit and predict work under an optional Bulkhead, which
//     caps the number of iterations fitting models at once, and an optional
//     Timeout bounding each execution. A single Bulkhead can be shared by
//     several concurrent runs.
//
// # Usage
//
//	retry := resilience.NewRetry(resilience.RetryConfig{
//	    MaxAttempts: 64,
//	    RetryIf: func(err error) bool {
//	        return errors.Is(err, resample.ErrDegenerateSample)
//	    },
//	})
//	err := retry.Execute(ctx, func(ctx context.Context, attempt int) error {
//	    return draw(ctx, i, attempt)
//	})
//
//	executor := resilience.NewExecutor(
//	    resilience.WithBulkhead(resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 4})),
//	    resilience.WithTimeout(time.Minute),
//	)
//	err = executor.Execute(ctx, func(ctx context.Context) error {
//	    return fitAndScore(ctx, draw)
//	})
package resilience
