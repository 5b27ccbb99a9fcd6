// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"strconv"

	"github.com/zosmac/gocore"
)

type (
	// outcome of reading one process during a table walk: a record, or the kind of failure
	// that caused the process to be skipped.
	outcome struct {
		record Record
		skip   Kind
		err    error
	}
)

// read reads a single process of the table.
func (e *Engine) read(ctx context.Context, pid Pid) outcome {
	attrs, err := e.source.Attributes(ctx, pid)
	if err != nil {
		return outcome{skip: Classify(err), err: err}
	}
	return outcome{record: Record{Attributes: attrs}}
}

// Collect walks the process table once. Processes that exit or deny access while the
// table is walked are skipped. The walk itself never fails: an empty table, or a table
// that could not be enumerated, yields no records.
func (e *Engine) Collect(ctx context.Context) []Record {
	pids, err := e.source.Pids(ctx)
	if err != nil {
		gocore.Error("process table", err).Warn()
		return nil
	}

	records := make([]Record, 0, len(pids))
	var unexpected int
	var last error
	for _, pid := range pids {
		if ctx.Err() != nil {
			break
		}
		o := e.read(ctx, pid)
		if o.err != nil {
			if !skippable(o.skip) {
				unexpected++
				last = o.err
			}
			continue
		}
		records = append(records, o.record)
	}

	if unexpected > 0 {
		gocore.Error("process table", last, map[string]string{
			"skipped": strconv.Itoa(unexpected),
		}).Info()
	}

	return records
}
