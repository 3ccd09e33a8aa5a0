package resilience

import (
	"context"
	"fmt"
)

// Operation is one attempt of a retryable unit of work. attempt starts at 0.
type Operation func(ctx context.Context, attempt int) error

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	// Default: 3
	MaxAttempts int

	// RetryIf determines if an error should trigger another attempt.
	// Default: all non-nil errors trigger retry.
	RetryIf func(err error) bool

	// OnRetry is called before each new attempt with the attempt that failed.
	OnRetry func(attempt int, err error)
}

// Retry re-runs failed operations.
type Retry struct {
	config RetryConfig
}

// NewRetry creates a new retry handler.
func NewRetry(config RetryConfig) *Retry {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.RetryIf == nil {
		config.RetryIf = func(err error) bool { return err != nil }
	}

	return &Retry{config: config}
}

// Execute runs op until it succeeds, fails with a non-retryable error, or
// MaxAttempts is reached. Exhaustion returns an error matching both
// ErrMaxRetriesExceeded and the last attempt's error.
func (r *Retry) Execute(ctx context.Context, op Operation) error {
	var lastErr error

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			if r.config.OnRetry != nil {
				r.config.OnRetry(attempt-1, lastErr)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		if !r.config.RetryIf(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetriesExceeded, r.config.MaxAttempts, lastErr)
}
