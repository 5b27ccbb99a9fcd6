// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
)

// Terminate requests that a resolved process exit. It does not wait for the exit.
// A handle whose process has already exited yields ErrNoSuchProcess, insufficient privilege
// ErrAccessDenied, and any other rejection an Error of KindUnknown carrying the OS error.
func (e *Engine) Terminate(ctx context.Context, h *Handle) error {
	if _, err := e.validate(ctx, h, "terminate"); err != nil {
		return err
	}
	if err := e.source.Terminate(ctx, h.pid); err != nil {
		return e.targetError(err, "terminate", h.pid)
	}
	return nil
}
