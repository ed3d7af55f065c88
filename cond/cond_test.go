package cond

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_NilSupplierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(nil) did not panic")
		}
	}()
	New(nil)
}

func TestCondition_IsTrue(t *testing.T) {
	c := New(func() bool { return true })
	if !c.IsTrue() {
		t.Error("IsTrue() = false, want true")
	}
}

func TestCondition_WaitTrueImmediate(t *testing.T) {
	c := New(func() bool { return true })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.WaitTrue(ctx); err != nil {
		t.Errorf("WaitTrue error: %v", err)
	}
}

func TestCondition_WaitTrueEventually(t *testing.T) {
	var flag atomic.Bool
	c := New(flag.Load, WithInterval(5*time.Millisecond))

	time.AfterFunc(20*time.Millisecond, func() { flag.Store(true) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.WaitTrue(ctx); err != nil {
		t.Errorf("WaitTrue error: %v", err)
	}
}

func TestCondition_WaitFalse(t *testing.T) {
	var flag atomic.Bool
	flag.Store(true)
	c := New(flag.Load, WithInterval(5*time.Millisecond))

	time.AfterFunc(20*time.Millisecond, func() { flag.Store(false) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.WaitFalse(ctx); err != nil {
		t.Errorf("WaitFalse error: %v", err)
	}
}

func TestCondition_WaitTrueTimeout(t *testing.T) {
	c := New(func() bool { return false }, WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := c.WaitTrue(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitTrue error = %v, want DeadlineExceeded", err)
	}
}

func TestCondition_WaitTrueCancelled(t *testing.T) {
	c := New(func() bool { return false }, WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	err := c.WaitTrue(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("WaitTrue error = %v, want Canceled", err)
	}
}

func TestWithInterval_Ignored(t *testing.T) {
	c := New(func() bool { return true }, WithInterval(0))
	if c.interval != DefaultInterval {
		t.Errorf("interval = %v, want default %v", c.interval, DefaultInterval)
	}
}
