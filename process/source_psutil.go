// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"math"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	// psutilStatus maps gopsutil status names to a Status.
	psutilStatus = map[string]Status{
		process.Running: StatusRunning,
		process.Sleep:   StatusSleeping,
		process.Idle:    StatusSleeping,
		process.Wait:    StatusSleeping,
		process.Lock:    StatusSleeping,
		process.Blocked: StatusSleeping,
		process.Stop:    StatusStopped,
		process.Zombie:  StatusZombie,
	}
)

type (
	// psutilSource reads the process table with gopsutil, which supports every platform.
	psutilSource struct{}
)

// NewPsutilSource returns a Source backed by gopsutil.
func NewPsutilSource() Source {
	return psutilSource{}
}

// Pids gets the list of active processes by pid.
func (psutilSource) Pids(ctx context.Context) ([]Pid, error) {
	ns, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, err
	}
	pids := make([]Pid, len(ns))
	for i, n := range ns {
		pids[i] = Pid(n)
	}
	return pids, nil
}

// open obtains the gopsutil process for a pid.
func (psutilSource) open(ctx context.Context, pid Pid) (*process.Process, error) {
	if pid < 0 || pid > math.MaxInt32 {
		return nil, newError(KindInvalid, "open", pid, nil)
	}
	return process.NewProcessWithContext(ctx, int32(pid))
}

// Attributes captures the identity, state and memory of a process.
func (s psutilSource) Attributes(ctx context.Context, pid Pid) (Attributes, error) {
	p, err := s.open(ctx, pid)
	if err != nil {
		return Attributes{}, err
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Attributes{}, err
	}
	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return Attributes{}, err
	}
	created, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return Attributes{}, err
	}

	// not every platform reports these, they are informational only
	status := StatusUnknown
	if ss, err := p.StatusWithContext(ctx); err == nil && len(ss) > 0 {
		if st, ok := psutilStatus[ss[0]]; ok {
			status = st
		}
	}
	threads, _ := p.NumThreadsWithContext(ctx)
	ppid, _ := p.PpidWithContext(ctx)

	return Attributes{
		Pid:      pid,
		Name:     name,
		Status:   status,
		Resident: mem.RSS,
		Virtual:  mem.VMS,
		Threads:  int(threads),
		Ppid:     Pid(ppid),
		Created:  time.UnixMilli(created),
	}, nil
}

// Times captures the user and system CPU time of a process.
func (s psutilSource) Times(ctx context.Context, pid Pid) (Times, error) {
	p, err := s.open(ctx, pid)
	if err != nil {
		return Times{}, err
	}
	ts, err := p.TimesWithContext(ctx)
	if err != nil {
		return Times{}, err
	}
	return Times{
		User:   time.Duration(ts.User * float64(time.Second)),
		System: time.Duration(ts.System * float64(time.Second)),
	}, nil
}

// Terminate requests that a process exit (SIGTERM on unix, TerminateProcess on windows).
func (s psutilSource) Terminate(ctx context.Context, pid Pid) error {
	if pid <= 0 {
		return newError(KindInvalid, "terminate", pid, nil)
	}
	p, err := s.open(ctx, pid)
	if err != nil {
		return err
	}
	return p.TerminateWithContext(ctx)
}
