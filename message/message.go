// Copyright © 2021-2026 The Gomon Project.

package message

import (
	"os"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/process"
)

type (
	// Event identifies the kind of a message.
	Event string

	// Header for a message.
	Header struct {
		Timestamp time.Time `json:"timestamp"`
		Host      string    `json:"host"`
		Source    string    `json:"source"`
		Event     Event     `json:"event"`
	}

	// Content interface methods for all messages.
	Content interface {
		Events() []string
		ID() string
	}

	// Ranking reports the processes consuming the most of a metric.
	Ranking struct {
		Header
		Metric    process.Metric   `json:"metric"`
		Processes []process.Record `json:"processes"`
	}

	// Details reports one resolved process.
	Details struct {
		Header
		Process process.Record `json:"process"`
	}

	// Outcome reports the result of a termination request.
	Outcome struct {
		Header
		Pid    process.Pid `json:"pid"`
		Name   string      `json:"name"`
		Result string      `json:"result"`
	}

	// Sample reports one reading of a monitored process.
	Sample struct {
		Header
		Pid     process.Pid     `json:"pid"`
		Name    string          `json:"name"`
		Reading process.Reading `json:"reading"`
	}
)

const (
	// message events.
	EventRank      Event = "rank"
	EventDetails   Event = "details"
	EventTerminate Event = "terminate"
	EventReading   Event = "reading"
	EventStop      Event = "stop"

	// source of all messages.
	source = "process"
)

var (
	// hostname identifies the host in message headers.
	hostname, _ = os.Hostname()

	// events valid event values for messages.
	events = gocore.ValidValue[Event]{}.Define(
		EventRank,
		EventDetails,
		EventTerminate,
		EventReading,
		EventStop,
	)
)

// header initializes the message header for an event.
func header(t time.Time, event Event) Header {
	return Header{
		Timestamp: t,
		Host:      hostname,
		Source:    source,
		Event:     event,
	}
}

// Events returns the list of acceptable Event values for messages.
func (Header) Events() []string {
	return events.ValidValues()
}

// NewRanking assembles a Ranking message.
func NewRanking(metric process.Metric, records []process.Record) *Ranking {
	return &Ranking{
		Header:    header(time.Now(), EventRank),
		Metric:    metric,
		Processes: records,
	}
}

// ID returns the identifier for a Ranking message.
func (r *Ranking) ID() string {
	return "top " + string(r.Metric)
}

// NewDetails assembles a Details message.
func NewDetails(r process.Record) *Details {
	return &Details{
		Header:  header(time.Now(), EventDetails),
		Process: r,
	}
}

// ID returns the identifier for a Details message.
func (d *Details) ID() string {
	return d.Process.Name + "[" + d.Process.Pid.String() + "]"
}

// NewOutcome assembles an Outcome message for a termination request.
func NewOutcome(h *process.Handle, err error) *Outcome {
	result := "terminated"
	if err != nil {
		result = err.Error()
	}
	return &Outcome{
		Header: header(time.Now(), EventTerminate),
		Pid:    h.Pid(),
		Name:   h.Name(),
		Result: result,
	}
}

// ID returns the identifier for an Outcome message.
func (o *Outcome) ID() string {
	return o.Name + "[" + o.Pid.String() + "]"
}

// NewSample assembles a Sample message from a monitor reading.
func NewSample(h *process.Handle, r process.Reading) *Sample {
	return &Sample{
		Header:  header(r.Time, EventReading),
		Pid:     h.Pid(),
		Name:    h.Name(),
		Reading: r,
	}
}

// NewStop assembles the final Sample message of a monitor, which carries no reading.
func NewStop(h *process.Handle, t time.Time) *Sample {
	return &Sample{
		Header: header(t, EventStop),
		Pid:    h.Pid(),
		Name:   h.Name(),
	}
}

// ID returns the identifier for a Sample message.
func (s *Sample) ID() string {
	return s.Name + "[" + s.Pid.String() + "]"
}
