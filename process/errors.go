// Copyright © 2021-2026 The Gomon Project.

package process

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

type (
	// Kind classifies a failure of a process operation.
	Kind int

	// Error reports a failed operation on a process.
	Error struct {
		Kind Kind
		Op   string
		Pid  Pid
		Err  error

		targeted bool // Pid identifies the process operated on, which may be pid 0
	}
)

const (
	KindUnknown Kind = iota
	KindNotFound
	KindVanished
	KindAccessDenied
	KindInvalid
)

var (
	// ErrNotFound reports that a name or pid resolved to no process.
	ErrNotFound = &Error{Kind: KindNotFound}

	// ErrVanished reports that a resolved process exited before a subsequent operation,
	// or that its pid now identifies a different process.
	ErrVanished = &Error{Kind: KindVanished}

	// ErrNoSuchProcess is the terminate outcome for a stale handle.
	ErrNoSuchProcess = ErrVanished

	// ErrAccessDenied reports insufficient privilege.
	ErrAccessDenied = &Error{Kind: KindAccessDenied}

	// ErrInvalid reports malformed input.
	ErrInvalid = &Error{Kind: KindInvalid}

	// ErrUnknown reports any other operating system rejection.
	ErrUnknown = &Error{Kind: KindUnknown}

	kinds = map[Kind]string{
		KindUnknown:      "unknown",
		KindNotFound:     "not found",
		KindVanished:     "vanished",
		KindAccessDenied: "access denied",
		KindInvalid:      "invalid",
	}
)

// String names the kind.
func (k Kind) String() string {
	return kinds[k]
}

// Error method to comply with error interface.
func (err *Error) Error() string {
	s := err.Kind.String()
	if err.Op != "" {
		s = err.Op + ": " + s
	}
	if err.targeted {
		s += " [pid " + err.Pid.String() + "]"
	}
	if err.Err != nil {
		s += ": " + err.Err.Error()
	}
	return s
}

// Unwrap method to comply with error interface.
func (err *Error) Unwrap() error {
	return err.Err
}

// Is matches any Error of the same Kind, so that errors.Is(err, ErrVanished) holds for every vanished process.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// newError assembles an Error of a specific kind for an operation on a pid.
func newError(kind Kind, op string, pid Pid, err error) *Error {
	return &Error{Kind: kind, Op: op, Pid: pid, Err: err, targeted: true}
}

// opError assembles an Error of a specific kind for an operation that targets no pid.
func opError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Classify determines the Kind of an error returned by a Source.
// A process that has exited reports KindVanished, a permission failure KindAccessDenied.
func Classify(err error) Kind {
	var e *Error
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &e):
		return e.Kind
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ESRCH),
		errors.Is(err, process.ErrorProcessNotRunning):
		return KindVanished
	case errors.Is(err, fs.ErrPermission),
		errors.Is(err, syscall.EPERM),
		errors.Is(err, syscall.EACCES):
		return KindAccessDenied
	}
	return KindUnknown
}

// skippable reports whether a per-process failure during a table walk is expected churn.
func skippable(kind Kind) bool {
	return kind == KindVanished || kind == KindAccessDenied
}
