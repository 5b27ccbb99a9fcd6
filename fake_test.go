// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/zosmac/procmon/message"
	"github.com/zosmac/procmon/process"
)

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

type (
	// fakeTable is a scripted process table whose processes accumulate CPU time as its clock
	// advances.
	fakeTable struct {
		mu      sync.Mutex
		procs   map[process.Pid]*entry
		order   []process.Pid
		clock   time.Time
		sleeps  int
		onSleep func(n int)
		killErr error
	}

	entry struct {
		attrs process.Attributes
		cpu   time.Duration
		rate  float64
	}
)

func newFakeTable() *fakeTable {
	return &fakeTable{
		procs: map[process.Pid]*entry{},
		clock: epoch,
	}
}

func (tb *fakeTable) add(pid process.Pid, name string, resident uint64, rate float64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.procs[pid] = &entry{
		attrs: process.Attributes{
			Pid:      pid,
			Name:     name,
			Status:   process.StatusRunning,
			Resident: resident,
			Virtual:  2 * resident,
			Threads:  3,
			Ppid:     1,
			Created:  epoch.Add(-time.Hour),
		},
		rate: rate,
	}
	tb.order = append(tb.order, pid)
}

func (tb *fakeTable) remove(pid process.Pid) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	delete(tb.procs, pid)
}

func (tb *fakeTable) Pids(context.Context) ([]process.Pid, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return append([]process.Pid(nil), tb.order...), nil
}

func (tb *fakeTable) Attributes(_ context.Context, pid process.Pid) (process.Attributes, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if e, ok := tb.procs[pid]; ok {
		return e.attrs, nil
	}
	return process.Attributes{}, process.ErrVanished
}

func (tb *fakeTable) Times(_ context.Context, pid process.Pid) (process.Times, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if e, ok := tb.procs[pid]; ok {
		return process.Times{User: e.cpu}, nil
	}
	return process.Times{}, process.ErrVanished
}

func (tb *fakeTable) Terminate(_ context.Context, pid process.Pid) error {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.killErr != nil {
		return tb.killErr
	}
	if _, ok := tb.procs[pid]; !ok {
		return process.ErrVanished
	}
	delete(tb.procs, pid)
	return nil
}

func (tb *fakeTable) now() time.Time {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.clock
}

func (tb *fakeTable) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tb.mu.Lock()
	tb.sleeps++
	n := tb.sleeps
	tb.clock = tb.clock.Add(d)
	for _, e := range tb.procs {
		e.cpu += time.Duration(e.rate * float64(d))
	}
	hook := tb.onSleep
	tb.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return ctx.Err()
}

// command creates a command on the table writing text, or JSON if asJSON.
func (tb *fakeTable) command(asJSON bool) (*command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &command{
		engine: process.New(tb,
			process.WithClock(tb.now, tb.sleep),
			process.WithCPUs(2),
			process.WithInterval(time.Second),
		),
		out: out,
	}
	if asJSON {
		cmd.enc = message.NewEncoder(out)
	}
	return cmd, out
}
