// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"sync/atomic"
)

type (
	// MonitorState is the state of a Monitor.
	MonitorState int32

	// Monitor samples one resolved process each tick until stopped, until its context is
	// cancelled, or until the process exits or denies access.
	Monitor struct {
		handle *Handle
		cancel context.CancelFunc
		done   chan struct{}
		state  atomic.Int32
		err    error
	}
)

const (
	MonitorActive MonitorState = iota
	MonitorStopped
)

// String names the state.
func (s MonitorState) String() string {
	if s == MonitorActive {
		return "active"
	}
	return "stopped"
}

// Monitor samples a resolved process every interval, calling onReading with each reading,
// until the context is cancelled or the process can no longer be sampled. The sampling
// interval is the tick, the loop does not sleep otherwise. Cancellation returns nil, and a
// tick interrupted by cancellation is never reported. Otherwise the terminal condition is
// returned: ErrVanished if the process exited, ErrAccessDenied if access was lost.
func (e *Engine) Monitor(ctx context.Context, h *Handle, onReading func(Reading)) error {
	tick := e
	if e.interval <= 0 {
		c := *e
		c.interval = DefaultInterval
		tick = &c
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		pct, attrs, err := tick.measure(ctx, h, "monitor")
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		onReading(Reading{
			Time:     tick.now(),
			CPU:      pct,
			Resident: attrs.Resident,
		})
	}
}

// StartMonitor monitors a resolved process on its own goroutine. onStop is called once when
// the Monitor stops, with nil if it was stopped or cancelled, otherwise with the terminal
// condition. Monitors share no state, so several may run for distinct processes.
func (e *Engine) StartMonitor(ctx context.Context, h *Handle, onReading func(Reading), onStop func(error)) *Monitor {
	ctx, cancel := context.WithCancel(ctx)
	m := &Monitor{
		handle: h,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(m.done)
		defer cancel()
		m.err = e.Monitor(ctx, h, onReading)
		m.state.Store(int32(MonitorStopped))
		if onStop != nil {
			onStop(m.err)
		}
	}()

	return m
}

// Handle reports the process being monitored.
func (m *Monitor) Handle() *Handle {
	return m.handle
}

// State reports whether the Monitor is active or stopped.
func (m *Monitor) State() MonitorState {
	return MonitorState(m.state.Load())
}

// Stop requests the Monitor to stop. It stops within one tick.
func (m *Monitor) Stop() {
	m.cancel()
}

// Wait blocks until the Monitor stops and returns its terminal condition.
func (m *Monitor) Wait() error {
	<-m.done
	return m.err
}

// Done is closed when the Monitor stops.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}
