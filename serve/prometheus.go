// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/gocore"
)

var (
	// descs of the metrics reported for a monitored process.
	cpuDesc = prometheus.NewDesc(
		"procmon_process_cpu_percent",
		"CPU utilization of a monitored process over its last sampling interval",
		[]string{"pid", "name"},
		nil,
	)
	residentDesc = prometheus.NewDesc(
		"procmon_process_resident_bytes",
		"Resident memory of a monitored process",
		[]string{"pid", "name"},
		nil,
	)
	readingsDesc = prometheus.NewDesc(
		"procmon_process_readings_total",
		"Count of readings taken of a monitored process",
		[]string{"pid", "name"},
		nil,
	)
)

// Describe returns metric descriptions for the Hub's Prometheus collector.
func (hub *Hub) Describe(ch chan<- *prometheus.Desc) {
	ch <- cpuDesc
	ch <- residentDesc
	ch <- readingsDesc
}

// Collect returns the latest reading of each monitored process to Prometheus.
func (hub *Hub) Collect(ch chan<- prometheus.Metric) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	for pid, s := range hub.latest {
		labels := []string{pid.String(), s.Name}
		ch <- prometheus.MustNewConstMetric(cpuDesc, prometheus.GaugeValue, s.Reading.CPU, labels...)
		ch <- prometheus.MustNewConstMetric(residentDesc, prometheus.GaugeValue, float64(s.Reading.Resident), labels...)
		ch <- prometheus.MustNewConstMetric(readingsDesc, prometheus.CounterValue, float64(hub.readings[pid]), labels...)
	}
	gocore.Error("collect", nil, map[string]string{
		"processes": strconv.Itoa(len(hub.latest)),
	}).Info()
}
