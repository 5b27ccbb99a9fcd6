// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"runtime"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		source sourceName
	}{
		source: func() sourceName {
			if runtime.GOOS == "linux" {
				return sourceProcfs
			}
			return sourceGopsutil
		}(),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.source,
		"source",
		"[-source procfs|gopsutil]",
		"The process table `source`: procfs reads /proc (linux only), gopsutil is portable",
	)
}
