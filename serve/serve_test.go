// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zosmac/procmon/message"
	"github.com/zosmac/procmon/process"
	"golang.org/x/net/websocket"
)

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// table is a process table of two processes.
type table struct{}

func (table) Pids(context.Context) ([]process.Pid, error) {
	return []process.Pid{10, 11}, nil
}

func (table) Attributes(_ context.Context, pid process.Pid) (process.Attributes, error) {
	switch pid {
	case 10:
		return process.Attributes{Pid: 10, Name: "postgres"}, nil
	case 11:
		return process.Attributes{Pid: 11, Name: "redis-server"}, nil
	}
	return process.Attributes{}, process.ErrVanished
}

func (table) Times(context.Context, process.Pid) (process.Times, error) {
	return process.Times{}, nil
}

func (table) Terminate(context.Context, process.Pid) error {
	return nil
}

func handle(t *testing.T, pid process.Pid) *process.Handle {
	t.Helper()
	h, err := process.New(table{}).ResolveByPid(context.Background(), pid)
	require.NoError(t, err)
	return h
}

func TestCollector(t *testing.T) {
	hub := NewHub()
	pg := handle(t, 10)
	hub.Publish(message.NewSample(pg, process.Reading{Time: epoch, CPU: 12.5, Resident: 1024}))
	hub.Publish(message.NewSample(pg, process.Reading{Time: epoch.Add(time.Second), CPU: 37.5, Resident: 2048}))
	hub.Publish(message.NewStop(pg, epoch.Add(2*time.Second)))

	expected := `
# HELP procmon_process_cpu_percent CPU utilization of a monitored process over its last sampling interval
# TYPE procmon_process_cpu_percent gauge
procmon_process_cpu_percent{name="postgres",pid="10"} 37.5
# HELP procmon_process_readings_total Count of readings taken of a monitored process
# TYPE procmon_process_readings_total counter
procmon_process_readings_total{name="postgres",pid="10"} 2
# HELP procmon_process_resident_bytes Resident memory of a monitored process
# TYPE procmon_process_resident_bytes gauge
procmon_process_resident_bytes{name="postgres",pid="10"} 2048
`
	require.NoError(t, testutil.CollectAndCompare(hub, strings.NewReader(expected)))

	hub.Forget(10)
	assert.Equal(t, 0, testutil.CollectAndCount(hub))
}

func TestMetricsEndpoint(t *testing.T) {
	hub := NewHub()
	hub.Publish(message.NewSample(handle(t, 11), process.Reading{Time: epoch, CPU: 3, Resident: 4096}))
	server := httptest.NewServer(Handler(hub))
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `procmon_process_resident_bytes{name="redis-server",pid="11"} 4096`)
	assert.NotContains(t, string(body), "go_goroutines", "runtime metrics are not reported")
}

func TestWebSocketStream(t *testing.T) {
	hub := NewHub()
	server := httptest.NewServer(Handler(hub))
	defer server.Close()

	ws, err := websocket.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", "", server.URL)
	require.NoError(t, err)
	defer ws.Close()
	require.Eventually(t, func() bool { return hub.subscriberCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	h := handle(t, 10)
	hub.Publish(message.NewSample(h, process.Reading{Time: epoch, CPU: 50, Resident: 8192}))

	var s message.Sample
	require.NoError(t, websocket.JSON.Receive(ws, &s))
	assert.Equal(t, message.EventReading, s.Event)
	assert.Equal(t, process.Pid(10), s.Pid)
	assert.Equal(t, 50.0, s.Reading.CPU)

	ws.Close()
	assert.Eventually(t, func() bool { return hub.subscriberCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestPublishDropsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	readings, unsubscribe := hub.subscribe()
	defer unsubscribe()

	h := handle(t, 10)
	for i := range backlog + 5 {
		hub.Publish(message.NewSample(h, process.Reading{Time: epoch.Add(time.Duration(i) * time.Second)}))
	}

	assert.Len(t, readings, backlog)
}
