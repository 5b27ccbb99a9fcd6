// Copyright © 2021-2026 The Gomon Project.

/*
Package process performs the following for the "procmon" command:
  - snapshot of the process table, skipping processes that exit or deny access mid-walk
  - CPU utilization sampling by comparing CPU time across a measured interval
  - ranking of processes by CPU or resident memory
  - resolution of a process by name or pid to a handle that detects pid reuse
  - termination of a resolved process
  - monitoring of a resolved process until cancelled or the process exits

The process table is read through a Source. On linux the default Source reads /proc
with the Prometheus procfs package; elsewhere gopsutil provides the process table.
*/
package process
