// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"flag"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/process"
)

var (
	// flags defines the command line flags.
	flags = struct {
		top      bool
		sort     process.Metric
		limit    int
		wait     time.Duration
		pid      int
		name     string
		search   bool
		kill     bool
		monitor  bool
		interval time.Duration
		json     bool
		config   string
	}{
		sort:     process.MetricCPU,
		limit:    process.DefaultLimit,
		wait:     time.Second,
		interval: process.DefaultInterval,
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.CommandDescription = `Inspects and controls the processes of the local host:
		• ranks processes by CPU or memory usage
		• reports the details of a process
		• terminates a process
		• monitors the CPU and memory usage of a process`

	gocore.Flags.Var(
		&flags.top,
		"top",
		"[-top]",
		"Rank the processes by the -sort metric",
	)
	gocore.Flags.Var(
		&flags.sort,
		"sort",
		"[-sort cpu|mem]",
		"Rank processes by `metric`, cpu or mem",
	)
	gocore.Flags.Var(
		&flags.limit,
		"limit",
		"[-limit n]",
		"Count of processes to rank",
	)
	gocore.Flags.Var(
		&flags.wait,
		"wait",
		"[-wait <interval>]",
		"Sample CPU usage for ranking over `interval`, specified in Go time.Duration string format",
	)
	gocore.Flags.Var(
		&flags.pid,
		"pid",
		"[-pid n]",
		"Pid of the process to search, kill or monitor",
	)
	gocore.Flags.Var(
		&flags.name,
		"name",
		"[-name <process>]",
		"Name of the `process` to search, kill or monitor, matched ignoring case",
	)
	gocore.Flags.Var(
		&flags.search,
		"search",
		"[-search]",
		"Report the details of the process identified by -pid or -name",
	)
	gocore.Flags.Var(
		&flags.kill,
		"kill",
		"[-kill]",
		"Terminate the process identified by -pid or -name",
	)
	gocore.Flags.Var(
		&flags.monitor,
		"monitor",
		"[-monitor]",
		"Monitor the process identified by -pid or -name until it exits or the command is interrupted",
	)
	gocore.Flags.Var(
		&flags.interval,
		"interval",
		"[-interval <interval>]",
		"Sample CPU usage of a single process over `interval`, specified in Go time.Duration string format",
	)
	gocore.Flags.Var(
		&flags.json,
		"json",
		"[-json]",
		"Write output as JSON",
	)
	gocore.Flags.Var(
		&flags.config,
		"config",
		"[-config <file>]",
		"YAML `file` of defaults for flags not set on the command line",
	)
}

// isSet reports whether a flag was set on the command line or by the configuration file.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
