// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		port int
	}{}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number for serving monitor readings to Prometheus and web sockets (default 0, do not serve)",
	)
}

// Port reports the port number requested on the command line.
func Port() int {
	return flags.port
}
