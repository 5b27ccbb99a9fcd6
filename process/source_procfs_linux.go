// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/procfs"
	"github.com/zosmac/gocore"
	"golang.org/x/sys/unix"
)

var (
	// state maps /proc/<pid>/stat state codes to a Status.
	state = map[string]Status{
		"R": StatusRunning,
		"S": StatusSleeping,
		"D": StatusSleeping,
		"I": StatusSleeping,
		"T": StatusStopped,
		"t": StatusStopped,
		"Z": StatusZombie,
	}

	// factor is the system units for CPU time (i.e. "ticks" or "jiffies").
	factor = 10000 * time.Microsecond
)

const (
	// commLen is the kernel's limit on the length of a process' comm, less the terminating nul.
	commLen = 15
)

type (
	// procfsSource reads the process table from the proc filesystem.
	procfsSource struct {
		fs       procfs.FS
		boottime time.Time
		kill     func(int, unix.Signal) error
	}
)

// NewProcfsSource returns a Source reading the proc filesystem mounted at root.
// An empty root selects /proc.
func NewProcfsSource(root string) (Source, error) {
	if root == "" {
		root = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, gocore.Error("procfs", err)
	}
	stat, err := fs.Stat()
	if err != nil {
		return nil, gocore.Error(filepath.Join(root, "stat"), err)
	}
	return &procfsSource{
		fs:       fs,
		boottime: time.Unix(int64(stat.BootTime), 0),
		kill:     unix.Kill,
	}, nil
}

// Pids gets the list of active processes by pid.
func (s *procfsSource) Pids(context.Context) ([]Pid, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, err
	}
	pids := make([]Pid, len(procs))
	for i, p := range procs {
		pids[i] = Pid(p.PID)
	}
	return pids, nil
}

// Attributes captures the identity, state and memory of a process.
func (s *procfsSource) Attributes(_ context.Context, pid Pid) (Attributes, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return Attributes{}, err
	}
	stat, err := p.Stat()
	if err != nil {
		return Attributes{}, err
	}

	status, ok := state[stat.State]
	if !ok {
		status = StatusUnknown
	}

	return Attributes{
		Pid:      pid,
		Name:     name(p, stat.Comm),
		Status:   status,
		Resident: uint64(max(stat.ResidentMemory(), 0)),
		Virtual:  uint64(stat.VirtualMemory()),
		Threads:  stat.NumThreads,
		Ppid:     Pid(stat.PPID),
		Created:  s.boottime.Add(time.Duration(stat.Starttime) * factor),
	}, nil
}

// Times captures the user and system CPU time of a process.
func (s *procfsSource) Times(_ context.Context, pid Pid) (Times, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return Times{}, err
	}
	stat, err := p.Stat()
	if err != nil {
		return Times{}, err
	}
	return Times{
		User:   time.Duration(stat.UTime) * factor,
		System: time.Duration(stat.STime) * factor,
	}, nil
}

// Terminate sends SIGTERM to a process.
func (s *procfsSource) Terminate(_ context.Context, pid Pid) error {
	if pid <= 0 { // kill(2) treats 0 and negative pids as process groups
		return newError(KindInvalid, "terminate", pid, nil)
	}
	return s.kill(int(pid), unix.SIGTERM)
}

// name extends a comm truncated by the kernel with the command line's executable base name.
func name(p procfs.Proc, comm string) string {
	if len(comm) < commLen {
		return comm
	}
	args, err := p.CmdLine()
	if err != nil || len(args) == 0 {
		return comm
	}
	if base := filepath.Base(args[0]); strings.HasPrefix(base, comm) {
		return base
	}
	return comm
}
