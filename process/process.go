// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"strconv"
	"time"

	"github.com/zosmac/gocore"
)

type (
	// Pid is the identifier for a process.
	Pid int

	// Status is the scheduling state of a process.
	Status string

	// Attributes are what a Source reports for a single process.
	Attributes struct {
		Pid      Pid       `json:"pid"`
		Name     string    `json:"name"`
		Status   Status    `json:"status"`
		Resident uint64    `json:"resident"`
		Virtual  uint64    `json:"virtual"`
		Threads  int       `json:"threads"`
		Ppid     Pid       `json:"ppid"`
		Created  time.Time `json:"created"`
	}

	// Times is the CPU time a process has accumulated since it started.
	Times struct {
		User   time.Duration `json:"user"`
		System time.Duration `json:"system"`
	}

	// Record is one process of a snapshot. CPU is meaningful only if Sampled.
	Record struct {
		Attributes
		CPU     float64 `json:"cpu,omitempty"`
		Sampled bool    `json:"sampled"`
	}

	// Reading is one tick of a Monitor.
	Reading struct {
		Time     time.Time `json:"time"`
		CPU      float64   `json:"cpu"`
		Resident uint64    `json:"resident"`
	}
)

const (
	StatusRunning  Status = "running"
	StatusSleeping Status = "sleeping"
	StatusStopped  Status = "stopped"
	StatusZombie   Status = "zombie"
	StatusUnknown  Status = "unknown"
)

var (
	// statuses valid values for Status.
	statuses = gocore.ValidValue[Status]{}.Define(
		StatusRunning,
		StatusSleeping,
		StatusStopped,
		StatusZombie,
		StatusUnknown,
	)
)

// String formats a pid as a string to comply with fmt.Stringer interface.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}

// String returns the status name.
func (s Status) String() string {
	if !statuses.IsValid(s) {
		return string(StatusUnknown)
	}
	return string(s)
}

// Statuses returns the list of acceptable Status values.
func Statuses() []string {
	return statuses.ValidValues()
}

// Total returns the sum of user and system time.
func (t Times) Total() time.Duration {
	return t.User + t.System
}
