// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

type (
	// Source is the operating system's process table. Each per-process method may fail
	// because the process exited (see Classify: KindVanished) or because the caller
	// lacks permission (KindAccessDenied).
	Source interface {
		// Pids enumerates the processes currently in the table.
		Pids(context.Context) ([]Pid, error)
		// Attributes reads the identity, state and memory of a process.
		Attributes(context.Context, Pid) (Attributes, error)
		// Times reads the CPU time accumulated by a process.
		Times(context.Context, Pid) (Times, error)
		// Terminate requests that a process exit.
		Terminate(context.Context, Pid) error
	}

	// sourceName identifies a Source implementation for the -source flag.
	sourceName string
)

const (
	sourceProcfs   sourceName = "procfs"
	sourceGopsutil sourceName = "gopsutil"
)

// Set is a flag.Value interface method to enable sourceName as a command line flag.
func (s *sourceName) Set(v string) error {
	switch sourceName(strings.ToLower(v)) {
	case sourceProcfs:
		if runtime.GOOS != "linux" {
			return fmt.Errorf("source %q requires linux", v)
		}
		*s = sourceProcfs
	case sourceGopsutil:
		*s = sourceGopsutil
	default:
		return fmt.Errorf("invalid source %q, choose procfs or gopsutil", v)
	}
	return nil
}

// String is a flag.Value interface method to enable sourceName as a command line flag.
func (s *sourceName) String() string {
	return string(*s)
}

// NewSource returns the Source selected with the -source flag.
func NewSource() (Source, error) {
	return newSource(flags.source)
}

// newSource constructs a named Source.
func newSource(name sourceName) (Source, error) {
	switch name {
	case sourceProcfs:
		return NewProcfsSource("")
	case sourceGopsutil:
		return NewPsutilSource(), nil
	}
	return nil, opError(KindInvalid, "source", fmt.Errorf("unknown source %q", name))
}
