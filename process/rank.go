// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type (
	// Metric selects the value processes are ranked by.
	Metric string

	// Request asks for the processes consuming the most of a Metric.
	Request struct {
		Metric Metric        `yaml:"metric"`
		Limit  int           `yaml:"limit"`
		Wait   time.Duration `yaml:"wait"`
	}
)

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "mem"

	// DefaultLimit is the count of processes ranked unless requested otherwise.
	DefaultLimit = 5
)

// Set is a flag.Value interface method to enable Metric as a command line flag.
func (m *Metric) Set(s string) error {
	metric, err := ParseMetric(s)
	if err != nil {
		return err
	}
	*m = metric
	return nil
}

// String is a flag.Value interface method to enable Metric as a command line flag.
func (m *Metric) String() string {
	return string(*m)
}

// ParseMetric interprets the name of a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "cpu":
		return MetricCPU, nil
	case "mem", "memory":
		return MetricMemory, nil
	}
	return "", opError(KindInvalid, "metric", fmt.Errorf("%q is neither cpu nor mem", s))
}

// value extracts a record's value for a metric.
func (m Metric) value(r Record) float64 {
	if m == MetricCPU {
		return r.CPU
	}
	return float64(r.Resident)
}

// Rank orders records by descending metric value, keeping the snapshot order of records with
// equal values, and truncates to limit. A limit beyond the count of records returns them all.
// The records passed in are not reordered.
func Rank(records []Record, metric Metric, limit int) ([]Record, error) {
	if limit <= 0 {
		return nil, opError(KindInvalid, "rank", fmt.Errorf("limit %d is not positive", limit))
	}
	if metric != MetricCPU && metric != MetricMemory {
		return nil, opError(KindInvalid, "rank", fmt.Errorf("unknown metric %q", metric))
	}

	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric.value(ranked[i]) > metric.value(ranked[j])
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Top snapshots the process table and ranks it. Ranking by CPU samples the snapshot in batch
// mode, waiting req.Wait between baseline and measurement.
func (e *Engine) Top(ctx context.Context, req Request) ([]Record, error) {
	if req.Metric == "" {
		req.Metric = MetricCPU
	}
	if req.Limit <= 0 {
		return nil, opError(KindInvalid, "top", fmt.Errorf("limit %d is not positive", req.Limit))
	}
	if req.Metric != MetricCPU && req.Metric != MetricMemory {
		return nil, opError(KindInvalid, "top", fmt.Errorf("unknown metric %q", req.Metric))
	}

	records := e.Collect(ctx)
	if req.Metric == MetricCPU {
		var err error
		if records, err = e.SampleCPU(ctx, records, req.Wait); err != nil {
			return nil, err
		}
	}
	return Rank(records, req.Metric, req.Limit)
}
