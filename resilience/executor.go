package resilience

import (
	"context"
	"time"
)

// Executor composes the bulkhead and timeout patterns around one unit of
// work.
type Executor struct {
	bulkhead *Bulkhead
	timeout  *Timeout
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// NewExecutor creates a new resilience executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithBulkhead adds bulkhead isolation to the executor.
func WithBulkhead(b *Bulkhead) ExecutorOption {
	return func(e *Executor) {
		e.bulkhead = b
	}
}

// WithTimeout bounds every execution to timeout. Zero leaves it unbounded.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		if timeout > 0 {
			e.timeout = NewTimeout(TimeoutConfig{Timeout: timeout})
		}
	}
}

// Execute runs fn through all configured patterns.
//
// The bulkhead slot (if configured) is acquired first, so time spent
// waiting for a slot does not count against the timeout.
func (e *Executor) Execute(ctx context.Context, fn func(context.Context) error) error {
	run := fn
	if e.timeout != nil {
		run = func(ctx context.Context) error {
			return e.timeout.Execute(ctx, fn)
		}
	}

	if e.bulkhead != nil {
		return e.bulkhead.Execute(ctx, run)
	}
	return run(ctx)
}
