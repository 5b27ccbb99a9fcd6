// Copyright © 2021-2026 The Gomon Project.

/*
Package main implements the Go language "procmon" process inspection and control command.
The command
  - ranks the processes consuming the most CPU or memory
  - reports the details of a process found by pid or by name
  - terminates a process found by pid or by name
  - monitors the CPU and memory usage of a process until it exits or the command is interrupted

While monitoring, the readings may also be served to Prometheus and to web socket clients.

The main package defines the following command line flags:
  - -top:      rank the processes by the -sort metric
  - -sort:     the metric for ranking, cpu or mem (default cpu)
  - -limit:    the count of processes ranked (default 5)
  - -wait:     the interval over which CPU usage is sampled for ranking (default 1s)
  - -pid:      the pid of the process to search, kill or monitor
  - -name:     the name of the process to search, kill or monitor
  - -search:   report the details of the process
  - -kill:     terminate the process
  - -monitor:  monitor the process
  - -interval: the interval over which CPU usage of a single process is sampled (default 1s)
  - -json:     write JSON output rather than text
  - -config:   a YAML file of flag defaults
*/
package main
