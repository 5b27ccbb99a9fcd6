// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"context"
	"strings"
	"time"
)

type (
	// Handle refers to one resolved process. It is bound to the process' pid and creation
	// time, so once the process exits every operation on the Handle fails with ErrVanished,
	// even if the operating system has reused the pid.
	Handle struct {
		pid     Pid
		name    string
		created time.Time
	}
)

// Pid reports the pid of the resolved process.
func (h *Handle) Pid() Pid {
	return h.pid
}

// Name reports the name of the process when it was resolved.
func (h *Handle) Name() string {
	return h.name
}

// Created reports the creation time of the resolved process.
func (h *Handle) Created() time.Time {
	return h.created
}

// String formats the handle as name[pid].
func (h *Handle) String() string {
	return h.name + "[" + h.pid.String() + "]"
}

// handle binds a Handle to a process' attributes.
func handle(attrs Attributes) *Handle {
	return &Handle{
		pid:     attrs.Pid,
		name:    attrs.Name,
		created: attrs.Created,
	}
}

// targetError types a Source failure on a resolved process.
func (e *Engine) targetError(err error, op string, pid Pid) error {
	switch kind := Classify(err); kind {
	case KindVanished, KindAccessDenied, KindInvalid:
		return newError(kind, op, pid, err)
	}
	return newError(KindUnknown, op, pid, err)
}

// validate confirms that a Handle still refers to the process it was resolved to.
func (e *Engine) validate(ctx context.Context, h *Handle, op string) (Attributes, error) {
	if h == nil {
		return Attributes{}, opError(KindInvalid, op, nil)
	}
	attrs, err := e.source.Attributes(ctx, h.pid)
	if err != nil {
		return Attributes{}, e.targetError(err, op, h.pid)
	}
	if !attrs.Created.Equal(h.created) {
		return Attributes{}, newError(KindVanished, op, h.pid, nil)
	}
	return attrs, nil
}

// ResolveByPid resolves a process by its pid. Pid 0 is a legitimate identifier on some
// platforms; callers express the absence of a pid rather than pass 0. If no process has
// the pid the result is ErrNotFound.
func (e *Engine) ResolveByPid(ctx context.Context, pid Pid) (*Handle, error) {
	if pid < 0 {
		return nil, newError(KindInvalid, "resolve", pid, nil)
	}
	attrs, err := e.source.Attributes(ctx, pid)
	if err != nil {
		switch kind := Classify(err); kind {
		case KindVanished:
			return nil, newError(KindNotFound, "resolve", pid, err)
		case KindAccessDenied, KindInvalid:
			return nil, newError(kind, "resolve", pid, err)
		}
		return nil, newError(KindUnknown, "resolve", pid, err)
	}
	return handle(attrs), nil
}

// ResolveByName resolves the first process encountered in a single walk of the process
// table whose name matches, ignoring case. Names are not unique and processes come and go
// during the walk, so which of several same named processes is found is best effort.
// If none matches the result is ErrNotFound.
func (e *Engine) ResolveByName(ctx context.Context, name string) (*Handle, error) {
	if name == "" {
		return nil, opError(KindInvalid, "resolve", nil)
	}
	pids, err := e.source.Pids(ctx)
	if err != nil {
		return nil, opError(Classify(err), "resolve", err)
	}
	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		o := e.read(ctx, pid)
		if o.err != nil {
			continue
		}
		if strings.EqualFold(o.record.Name, name) {
			return handle(o.record.Attributes), nil
		}
	}
	return nil, &Error{Kind: KindNotFound, Op: "resolve " + name}
}

// Details reports the attributes of a resolved process along with its CPU utilization
// measured over the Engine's interval.
func (e *Engine) Details(ctx context.Context, h *Handle) (Record, error) {
	pct, attrs, err := e.measure(ctx, h, "details")
	if err != nil {
		return Record{}, err
	}
	return Record{
		Attributes: attrs,
		CPU:        pct,
		Sampled:    true,
	}, nil
}
