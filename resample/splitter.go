package resample

import (
	"context"
	"fmt"
	"iter"
)

// DefaultMaxAttempts bounds how many draws are tried per split before a
// degenerate sample is treated as fatal.
const DefaultMaxAttempts = 64

// OutOfBag yields bootstrap train/out-of-bag splits.
//
// Split i is drawn from Stream(Seed, i, attempt); degenerate draws are
// retried with the next attempt number up to MaxAttempts.
type OutOfBag struct {
	// Splits is the number of splits to yield. Must be greater than one.
	Splits int

	// Seed keys every stream.
	Seed uint64

	// MaxAttempts is the number of draws tried per split.
	// Default: DefaultMaxAttempts
	MaxAttempts int

	err error
}

// Split returns a sequence of (split index, draw) pairs for a dataset of n
// samples. Iteration stops early on error; check Err afterwards.
func (o *OutOfBag) Split(n int) iter.Seq2[int, Draw] {
	return func(yield func(int, Draw) bool) {
		o.err = nil
		if o.Splits < 2 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidSplits, o.Splits)
			return
		}

		attempts := o.MaxAttempts
		if attempts <= 0 {
			attempts = DefaultMaxAttempts
		}

		retry := NewRedraw(attempts, nil)
		for i := 0; i < o.Splits; i++ {
			draw, _, err := DrawWithRetry(context.Background(), retry, o.Seed, i, n)
			if err != nil {
				o.err = fmt.Errorf("split %d: %w", i, err)
				return
			}
			if !yield(i, draw) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last Split iteration, if any.
func (o *OutOfBag) Err() error {
	return o.err
}
