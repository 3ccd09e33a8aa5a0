package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/bootscore/resilience"
)

func ExampleNewRetry() {
	errDegenerate := errors.New("empty out-of-bag set")

	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxAttempts: 5,
		RetryIf: func(err error) bool {
			return errors.Is(err, errDegenerate)
		},
	})

	err := retry.Execute(context.Background(), func(ctx context.Context, attempt int) error {
		if attempt < 2 {
			return errDegenerate
		}
		fmt.Println("succeeded on attempt", attempt)
		return nil
	})

	fmt.Println("error:", err)
	// Output:
	// succeeded on attempt 2
	// error: <nil>
}

func ExampleRetry_Execute_exhausted() {
	retry := resilience.NewRetry(resilience.RetryConfig{MaxAttempts: 2})

	err := retry.Execute(context.Background(), func(ctx context.Context, attempt int) error {
		return errors.New("still degenerate")
	})

	fmt.Println(errors.Is(err, resilience.ErrMaxRetriesExceeded))
	// Output:
	// true
}

func ExampleNewBulkhead() {
	bulkhead := resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 2})

	_ = bulkhead.Execute(context.Background(), func(ctx context.Context) error {
		fmt.Println("active:", bulkhead.Metrics().Active)
		return nil
	})
	fmt.Println("active:", bulkhead.Metrics().Active)
	// Output:
	// active: 1
	// active: 0
}

func ExampleNewExecutor() {
	executor := resilience.NewExecutor(
		resilience.WithBulkhead(resilience.NewBulkhead(resilience.BulkheadConfig{MaxConcurrent: 4})),
		resilience.WithTimeout(10*time.Millisecond),
	)

	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	fmt.Println("timed out:", errors.Is(err, resilience.ErrTimeout))
	// Output:
	// timed out: true
}
