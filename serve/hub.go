// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"sync"

	"github.com/zosmac/procmon/message"
	"github.com/zosmac/procmon/process"
)

type (
	// Hub gathers the readings of monitored processes for the server's endpoints.
	Hub struct {
		mu          sync.Mutex
		latest      map[process.Pid]*message.Sample
		readings    map[process.Pid]uint64
		subscribers map[chan *message.Sample]struct{}
	}
)

const (
	// backlog is the count of readings queued for a web socket client before readings are dropped.
	backlog = 16
)

// NewHub creates a Hub.
func NewHub() *Hub {
	return &Hub{
		latest:      map[process.Pid]*message.Sample{},
		readings:    map[process.Pid]uint64{},
		subscribers: map[chan *message.Sample]struct{}{},
	}
}

// Publish records a monitored process' reading and streams it to subscribers. A subscriber
// that has fallen behind misses the reading.
func (hub *Hub) Publish(s *message.Sample) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if s.Event == message.EventReading {
		hub.latest[s.Pid] = s
		hub.readings[s.Pid]++
	}
	for ch := range hub.subscribers {
		select {
		case ch <- s:
		default:
		}
	}
}

// Forget drops a process that is no longer monitored from the metrics.
func (hub *Hub) Forget(pid process.Pid) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.latest, pid)
	delete(hub.readings, pid)
}

// subscribe registers a channel to receive published readings.
func (hub *Hub) subscribe() (<-chan *message.Sample, func()) {
	ch := make(chan *message.Sample, backlog)
	hub.mu.Lock()
	hub.subscribers[ch] = struct{}{}
	hub.mu.Unlock()

	return ch, func() {
		hub.mu.Lock()
		delete(hub.subscribers, ch)
		hub.mu.Unlock()
	}
}

// subscriberCount reports the count of web socket clients.
func (hub *Hub) subscriberCount() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.subscribers)
}
