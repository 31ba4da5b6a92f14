package source

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("timed out")
	ErrCanceled         = errors.New("canceled")
	ErrNonZeroExit      = errors.New("non-zero exit status")
)

// Error describes a failed command or file read. Kind is one of the
// sentinel errors above and is matched by errors.Is.
type Error struct {
	Op     string // "exec" or "read"
	Target string // command line or path
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Target, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Kind)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// contextError reports why ctx ended: its deadline passed, or the caller
// gave up (an interrupt) before it did.
func contextError(ctx context.Context, op, target string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Op: op, Target: target, Kind: ErrTimeout, Err: ctx.Err()}
	}
	return &Error{Op: op, Target: target, Kind: ErrCanceled, Err: ctx.Err()}
}
