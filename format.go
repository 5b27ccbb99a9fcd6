// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/zosmac/procmon/process"
)

const (
	// mb is the count of bytes in a megabyte.
	mb = 1024 * 1024
)

// percent formats a CPU percentage to two decimal places.
func percent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64) + "%"
}

// megabytes formats a byte count in megabytes to two decimal places.
func megabytes(b uint64) string {
	return strconv.FormatFloat(float64(b)/mb, 'f', 2, 64) + " MB"
}

// printf writes text output.
func (cmd *command) printf(format string, a ...any) {
	fmt.Fprintf(cmd.out, format, a...)
}

// table creates a table writer for text output. Output to a terminal is drawn with borders.
func (cmd *command) table() table.Writer {
	tw := table.NewWriter()
	if cmd.styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.Style().Options = table.OptionsNoBordersAndSeparators
	}
	return tw
}

// printRanking writes the ranked processes.
func (cmd *command) printRanking(metric process.Metric, records []process.Record) {
	title := "CPU"
	if metric == process.MetricMemory {
		title = "memory usage"
	}
	cmd.printf("Top %d processes sorted by %s:\n", len(records), title)

	tw := cmd.table()
	tw.AppendHeader(table.Row{"PID", "Name", "CPU", "Memory"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, r := range records {
		cpu := "-"
		if r.Sampled {
			cpu = percent(r.CPU)
		}
		tw.AppendRow(table.Row{r.Pid, r.Name, cpu, megabytes(r.Resident)})
	}
	cmd.printf("%s\n", tw.Render())
}

// printDetails writes the attributes of a process.
func (cmd *command) printDetails(r process.Record) {
	cmd.printf("Process Information for PID %s:\n", r.Pid)

	tw := cmd.table()
	tw.AppendRows([]table.Row{
		{"PID", r.Pid},
		{"Name", r.Name},
		{"Status", r.Status},
		{"CPU Usage", percent(r.CPU)},
		{"Memory Usage (RSS)", megabytes(r.Resident)},
		{"Memory Usage (VMS)", megabytes(r.Virtual)},
		{"Threads", r.Threads},
		{"Parent PID", r.Ppid},
		{"Create Time", r.Created.Local().Format(time.ANSIC)},
	})
	cmd.printf("%s\n", tw.Render())
}

// printReading writes a monitor reading.
func (cmd *command) printReading(r process.Reading) {
	cmd.printf("%s CPU Usage: %s, Memory Usage: %s\n",
		r.Time.Local().Format(time.TimeOnly),
		percent(r.CPU),
		megabytes(r.Resident),
	)
}
