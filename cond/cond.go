// Package cond provides polled boolean conditions.
//
// A Condition re-evaluates a supplier function at a fixed interval until it
// reports the desired state, the context is cancelled, or its deadline
// passes. This is a simple poll loop, not a synchronization primitive; use
// it to wait on state that has no native signalling, such as an external
// process or a value mutated elsewhere.
package cond

import (
	"context"
	"time"
)

// DefaultInterval is the polling interval used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Condition polls a boolean supplier.
type Condition struct {
	supplier func() bool
	interval time.Duration
}

// Option configures a Condition.
type Option func(*Condition)

// WithInterval sets the polling interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Condition) {
		if d > 0 {
			c.interval = d
		}
	}
}

// New creates a Condition around supplier. It panics if supplier is nil.
func New(supplier func() bool, opts ...Option) *Condition {
	if supplier == nil {
		panic("cond: nil supplier")
	}
	c := &Condition{
		supplier: supplier,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsTrue evaluates the supplier once.
func (c *Condition) IsTrue() bool {
	return c.supplier()
}

// WaitTrue blocks until the supplier reports true or the context is done.
// The supplier is evaluated immediately, then once per interval. It returns
// the context's error on cancellation or deadline.
func (c *Condition) WaitTrue(ctx context.Context) error {
	return c.wait(ctx, true)
}

// WaitFalse blocks until the supplier reports false or the context is done.
func (c *Condition) WaitFalse(ctx context.Context) error {
	return c.wait(ctx, false)
}

func (c *Condition) wait(ctx context.Context, want bool) error {
	if c.supplier() == want {
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.supplier() == want {
				return nil
			}
		}
	}
}
