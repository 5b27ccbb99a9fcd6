// Copyright © 2021-2026 The Gomon Project.

//go:build !linux

package process

import (
	"github.com/zosmac/gocore"
)

// NewProcfsSource reports that the proc filesystem is unavailable.
func NewProcfsSource(string) (Source, error) {
	return nil, gocore.Unsupported()
}
