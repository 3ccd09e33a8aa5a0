package resample

import (
	"context"
	"errors"

	"github.com/jonwraymond/bootscore/resilience"
)

// NewRedraw returns a retry that draws again, up to maxAttempts times, when
// a draw is degenerate. onRedraw, when set, sees each rejected attempt.
func NewRedraw(maxAttempts int, onRedraw func(attempt int, err error)) *resilience.Retry {
	return resilience.NewRetry(resilience.RetryConfig{
		MaxAttempts: maxAttempts,
		RetryIf: func(err error) bool {
			return errors.Is(err, ErrDegenerateSample)
		},
		OnRetry: onRedraw,
	})
}

// DrawWithRetry draws the sample of iteration from Stream(seed, iteration,
// attempt), letting retry decide which failed attempts are drawn again. It
// returns the accepted draw and the number of attempts taken.
//
// When retry gives up, the error matches resilience.ErrMaxRetriesExceeded
// and the last draw error.
func DrawWithRetry(ctx context.Context, retry *resilience.Retry, seed uint64, iteration, n int) (Draw, int, error) {
	var (
		draw     Draw
		attempts int
	)
	err := retry.Execute(ctx, func(ctx context.Context, attempt int) error {
		attempts = attempt + 1
		d, err := DrawSample(n, Stream(seed, iteration, attempt))
		if err != nil {
			return err
		}
		draw = d
		return nil
	})
	if err != nil {
		return Draw{}, attempts, err
	}
	return draw, attempts, nil
}
