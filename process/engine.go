// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
)

const (
	// DefaultInterval is the single mode CPU sampling interval and Monitor tick.
	DefaultInterval = time.Second
)

type (
	// Engine snapshots, samples, ranks, resolves, terminates and monitors processes of a Source.
	// An Engine holds no per-process state, so it may be shared by concurrent callers.
	Engine struct {
		source   Source
		interval time.Duration
		cpus     int
		now      func() time.Time
		sleep    func(context.Context, time.Duration) error
	}

	// Option configures an Engine.
	Option func(*Engine)
)

// WithInterval sets the single mode sampling interval, which is also the Monitor tick.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.interval = d
		}
	}
}

// WithCPUs sets the count of logical CPUs, which bounds concurrent reads when sampling in batch.
func WithCPUs(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cpus = n
		}
	}
}

// WithClock replaces the wall clock and the interval wait.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// New creates an Engine for a Source.
func New(source Source, opts ...Option) *Engine {
	e := &Engine{
		source:   source,
		interval: DefaultInterval,
		cpus:     logicalCPUs(),
		now:      time.Now,
		sleep:    sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Interval reports the single mode sampling interval.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// logicalCPUs counts the logical processors of the host.
func logicalCPUs() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// sleep waits for an interval unless the context is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
