// Copyright © 2021-2026 The Gomon Project.

package message

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		pretty bool
	}{}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.pretty,
		"pretty",
		"[-pretty]",
		"Produce JSON output in human readable format",
	)
}
