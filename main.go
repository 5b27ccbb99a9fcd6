// Copyright © 2021-2026 The Gomon Project.

package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/procmon/message"
	"github.com/zosmac/procmon/process"
	"github.com/zosmac/procmon/serve"
	"golang.org/x/term"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	if flags.config != "" {
		f, err := os.Open(flags.config)
		if err != nil {
			return gocore.Error("config", err)
		}
		err = applyConfig(&gocore.Flags.FlagSet, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	requested, err := operation()
	if err != nil {
		return err
	}

	source, err := process.NewSource()
	if err != nil {
		return gocore.Error("source", err)
	}

	cmd := &command{
		engine: process.New(source, process.WithInterval(flags.interval)),
		out:    os.Stdout,
		styled: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if flags.json {
		cmd.enc = message.NewEncoder(nil)
	}

	gocore.Error("start", nil, map[string]string{
		"pid":       strconv.Itoa(os.Getpid()),
		"command":   strings.Join(os.Args, " "),
		"operation": requested.String(),
		"user":      gocore.Username(os.Getuid()),
	}).Info()

	switch requested {
	case opTop:
		return cmd.top(ctx, process.Request{
			Metric: flags.sort,
			Limit:  flags.limit,
			Wait:   flags.wait,
		})
	}

	h, err := cmd.resolve(ctx, target())
	if err != nil {
		return err
	}

	switch requested {
	case opKill:
		return cmd.kill(ctx, h)
	case opMonitor:
		if serve.Port() > 0 {
			cmd.hub = serve.NewHub()
			if err := serve.Serve(ctx, cmd.hub); err != nil {
				return err
			}
		}
		return cmd.monitor(ctx, h)
	}
	return cmd.details(ctx, h)
}
