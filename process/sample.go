// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type (
	// baseline is a CPU time reading and the wall clock time it was taken.
	baseline struct {
		times Times
		at    time.Time
		err   error
	}
)

// percent computes CPU utilization between two readings as CPU time over elapsed time.
// The result aggregates all cores, so a process busy on several cores reports more than 100.
func percent(before, after baseline) float64 {
	elapsed := after.at.Sub(before.at)
	if elapsed <= 0 {
		return 0
	}
	delta := after.times.Total() - before.times.Total()
	if delta <= 0 {
		return 0
	}
	return delta.Seconds() / elapsed.Seconds() * 100
}

// times reads the CPU time of a process and stamps it.
func (e *Engine) times(ctx context.Context, pid Pid) baseline {
	ts, err := e.source.Times(ctx, pid)
	return baseline{times: ts, at: e.now(), err: err}
}

// timesAll reads the CPU time of each record's process, concurrently up to the logical CPU count.
// Each result lands in its record's slot, records are only read.
func (e *Engine) timesAll(ctx context.Context, records []Record) []baseline {
	bs := make([]baseline, len(records))
	var g errgroup.Group
	g.SetLimit(e.cpus)
	for i := range records {
		g.Go(func() error {
			bs[i] = e.times(ctx, records[i].Pid)
			return nil
		})
	}
	g.Wait()
	return bs
}

// SampleCPU measures the CPU utilization of a set of records in batch mode: a baseline
// for every process, an optional wait, then a second reading. Processes without both
// readings (exited or denied) are dropped. The records passed in are not modified; the
// result holds new records with CPU set. Only cancellation of the wait returns an error.
func (e *Engine) SampleCPU(ctx context.Context, records []Record, wait time.Duration) ([]Record, error) {
	before := e.timesAll(ctx, records)
	if err := e.sleep(ctx, wait); err != nil {
		return nil, err
	}
	after := e.timesAll(ctx, records)

	sampled := make([]Record, 0, len(records))
	for i, r := range records {
		if before[i].err != nil || after[i].err != nil {
			continue
		}
		r.CPU = percent(before[i], after[i])
		r.Sampled = true
		sampled = append(sampled, r)
	}
	return sampled, nil
}

// SampleOne measures the CPU utilization of a resolved process in single mode, blocking for
// the Engine's interval between baseline and measurement. If the process exits in between,
// or its pid is reused, the result is ErrVanished rather than a value.
func (e *Engine) SampleOne(ctx context.Context, h *Handle) (float64, error) {
	pct, _, err := e.measure(ctx, h, "sample")
	return pct, err
}

// measure takes a single mode CPU sample of a resolved process and returns it with the
// process' attributes as read after the interval.
func (e *Engine) measure(ctx context.Context, h *Handle, op string) (float64, Attributes, error) {
	if _, err := e.validate(ctx, h, op); err != nil {
		return 0, Attributes{}, err
	}
	before := e.times(ctx, h.pid)
	if before.err != nil {
		return 0, Attributes{}, e.targetError(before.err, op, h.pid)
	}
	if err := e.sleep(ctx, e.interval); err != nil {
		return 0, Attributes{}, err
	}
	after := e.times(ctx, h.pid)
	if after.err != nil {
		return 0, Attributes{}, e.targetError(after.err, op, h.pid)
	}
	attrs, err := e.validate(ctx, h, op) // the pid may have been reused during the interval
	if err != nil {
		return 0, Attributes{}, err
	}
	return percent(before, after), attrs, nil
}
