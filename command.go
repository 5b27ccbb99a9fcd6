// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/message"
	"github.com/zosmac/procmon/process"
	"github.com/zosmac/procmon/serve"
)

type (
	// command performs the requested operation and reports its results.
	command struct {
		engine *process.Engine
		out    io.Writer
		styled bool             // text output is to a terminal
		enc    *message.Encoder // JSON output when set
		hub    *serve.Hub       // serve monitor readings when set
	}
)

// resolve finds the process an operation acts on.
func (cmd *command) resolve(ctx context.Context, t processRef) (*process.Handle, error) {
	if t.byPid {
		return cmd.engine.ResolveByPid(ctx, t.pid)
	}
	return cmd.engine.ResolveByName(ctx, t.name)
}

// top reports the processes consuming the most of a metric.
func (cmd *command) top(ctx context.Context, req process.Request) error {
	records, err := cmd.engine.Top(ctx, req)
	if err != nil {
		return err
	}
	if cmd.enc != nil {
		return cmd.enc.Encode(message.NewRanking(req.Metric, records))
	}
	cmd.printRanking(req.Metric, records)
	return nil
}

// details reports the attributes and CPU usage of a process.
func (cmd *command) details(ctx context.Context, h *process.Handle) error {
	r, err := cmd.engine.Details(ctx, h)
	if err != nil {
		return err
	}
	if cmd.enc != nil {
		return cmd.enc.Encode(message.NewDetails(r))
	}
	cmd.printDetails(r)
	return nil
}

// kill requests that a process terminate.
func (cmd *command) kill(ctx context.Context, h *process.Handle) error {
	err := cmd.engine.Terminate(ctx, h)
	if cmd.enc != nil {
		if err := cmd.enc.Encode(message.NewOutcome(h, err)); err != nil {
			return err
		}
	} else if err == nil {
		cmd.printf("Process %s has been terminated.\n", h)
	}
	return err
}

// monitor reports the readings of a process until it exits, access to it is lost, or the
// context is cancelled.
func (cmd *command) monitor(ctx context.Context, h *process.Handle) error {
	if cmd.enc == nil {
		cmd.printf("Monitoring process %s\n", h)
	}

	m := cmd.engine.StartMonitor(ctx, h,
		func(r process.Reading) {
			s := message.NewSample(h, r)
			if cmd.hub != nil {
				cmd.hub.Publish(s)
			}
			if cmd.enc != nil {
				if err := cmd.enc.Encode(s); err != nil {
					gocore.Error("encode", err).Err()
				}
				return
			}
			cmd.printReading(r)
		},
		func(err error) {
			if cmd.hub != nil {
				cmd.hub.Publish(message.NewStop(h, time.Now()))
				cmd.hub.Forget(h.Pid())
			}
		},
	)

	err := m.Wait()
	if cmd.enc != nil {
		if err := cmd.enc.Encode(message.NewStop(h, time.Now())); err != nil {
			return err
		}
	} else {
		switch {
		case err == nil:
			cmd.printf("Monitoring of process %s stopped.\n", h)
		case errors.Is(err, process.ErrVanished):
			cmd.printf("Process %s has terminated.\n", h)
		}
	}
	return err
}
