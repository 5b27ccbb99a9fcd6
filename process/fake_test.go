// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"sync"
	"time"
)

type (
	// fakeProc is a scripted process of a fakeSource.
	fakeProc struct {
		attrs    Attributes
		cpu      time.Duration
		rate     float64 // cores kept busy
		attrsErr error
		timesErr error
	}

	// fakeSource is a Source with a scripted process table and its own clock. Each sleep
	// advances the clock and every process' CPU time, then calls onSleep.
	fakeSource struct {
		mu         sync.Mutex
		procs      map[Pid]*fakeProc
		order      []Pid
		pidsErr    error
		termErr    error
		terminated []Pid
		clock      time.Time
		sleeps     int
		onSleep    func(n int)
	}
)

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newFakeSource() *fakeSource {
	return &fakeSource{
		procs: map[Pid]*fakeProc{},
		clock: epoch,
	}
}

// add appends a process to the table.
func (fs *fakeSource) add(pid Pid, name string, resident uint64, rate float64) *fakeProc {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	p := &fakeProc{
		attrs: Attributes{
			Pid:      pid,
			Name:     name,
			Status:   StatusRunning,
			Resident: resident,
			Virtual:  resident * 4,
			Threads:  1,
			Ppid:     1,
			Created:  epoch.Add(-time.Duration(pid) * time.Minute),
		},
		rate: rate,
	}
	fs.procs[pid] = p
	fs.order = append(fs.order, pid)
	return p
}

// kill removes a process from the table.
func (fs *fakeSource) kill(pid Pid) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.procs, pid)
}

// reuse replaces a process with a new one having the same pid.
func (fs *fakeSource) reuse(pid Pid, name string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.procs[pid] = &fakeProc{
		attrs: Attributes{
			Pid:     pid,
			Name:    name,
			Status:  StatusRunning,
			Created: fs.clock,
		},
	}
}

// deny makes every subsequent read of a process fail with permission denied.
func (fs *fakeSource) deny(pid Pid) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if p, ok := fs.procs[pid]; ok {
		p.attrsErr = ErrAccessDenied
		p.timesErr = ErrAccessDenied
	}
}

func (fs *fakeSource) Pids(context.Context) ([]Pid, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.pidsErr != nil {
		return nil, fs.pidsErr
	}
	return append([]Pid(nil), fs.order...), nil
}

func (fs *fakeSource) Attributes(_ context.Context, pid Pid) (Attributes, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	p, ok := fs.procs[pid]
	if !ok {
		return Attributes{}, ErrVanished
	}
	if p.attrsErr != nil {
		return Attributes{}, p.attrsErr
	}
	return p.attrs, nil
}

func (fs *fakeSource) Times(_ context.Context, pid Pid) (Times, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	p, ok := fs.procs[pid]
	if !ok {
		return Times{}, ErrVanished
	}
	if p.timesErr != nil {
		return Times{}, p.timesErr
	}
	return Times{User: p.cpu * 3 / 4, System: p.cpu - p.cpu*3/4}, nil
}

func (fs *fakeSource) Terminate(_ context.Context, pid Pid) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.termErr != nil {
		return fs.termErr
	}
	if _, ok := fs.procs[pid]; !ok {
		return ErrVanished
	}
	fs.terminated = append(fs.terminated, pid)
	return nil
}

func (fs *fakeSource) now() time.Time {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.clock
}

func (fs *fakeSource) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fs.mu.Lock()
	fs.sleeps++
	n := fs.sleeps
	fs.clock = fs.clock.Add(d)
	for _, p := range fs.procs {
		p.cpu += time.Duration(p.rate * float64(d))
	}
	hook := fs.onSleep
	fs.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return ctx.Err()
}

// engine creates an Engine on the fake source with 4 CPUs and a 1s interval.
func (fs *fakeSource) engine() *Engine {
	return New(fs,
		WithClock(fs.now, fs.sleep),
		WithCPUs(4),
		WithInterval(time.Second),
	)
}
