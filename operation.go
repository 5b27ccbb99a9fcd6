// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"errors"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/process"
)

type (
	// op is the operation requested on the command line.
	op int

	// processRef identifies the process an operation acts on. A pid is used when one is given,
	// as pid 0 is a legitimate process identifier.
	processRef struct {
		pid   process.Pid
		byPid bool
		name  string
	}
)

const (
	opTop op = iota
	opSearch
	opKill
	opMonitor
)

var (
	// ops names the operations.
	ops = [...]string{
		opTop:     "top",
		opSearch:  "search",
		opKill:    "kill",
		opMonitor: "monitor",
	}
)

// String names the operation.
func (o op) String() string {
	return ops[o]
}

// operation selects the operation requested by the command line flags.
func operation() (op, error) {
	t := target()
	return selectOperation(flags.top, flags.search, flags.kill, flags.monitor, t.byPid || t.name != "")
}

// selectOperation permits one operation. An operation on a process requires its pid or name,
// which alone requests its details.
func selectOperation(top, search, kill, monitor, targeted bool) (op, error) {
	var selected []op
	for o, requested := range [...]bool{
		opTop:     top,
		opSearch:  search,
		opKill:    kill,
		opMonitor: monitor,
	} {
		if requested {
			selected = append(selected, op(o))
		}
	}

	switch len(selected) {
	case 0:
		if targeted {
			return opSearch, nil
		}
		return 0, gocore.Error("operation", errors.New("specify -top, or -pid or -name of a process"))
	case 1:
		if selected[0] != opTop && !targeted {
			return 0, gocore.Error("operation", errors.New("specify -pid or -name of the process to "+selected[0].String()))
		}
		return selected[0], nil
	}
	return 0, gocore.Error("operation", errors.New("specify only one of -top, -search, -kill, -monitor"))
}

// target returns the process identified on the command line.
func target() processRef {
	return processRef{
		pid:   process.Pid(flags.pid),
		byPid: isSet(&gocore.Flags.FlagSet, "pid"),
		name:  flags.name,
	}
}
