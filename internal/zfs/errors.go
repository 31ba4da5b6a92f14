package zfs

import (
	"errors"
	"fmt"

	"github.com/rusenback/zfscachemon/internal/source"
)

// Kind classifies monitor errors. Only NoTargetFound and
// InvalidConfiguration are fatal, and only before the refresh loop starts.
type Kind int

const (
	SourceUnavailable Kind = iota + 1
	Timeout
	ParseDegraded
	NoTargetFound
	InvalidConfiguration
)

func (k Kind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case Timeout:
		return "timeout"
	case ParseDegraded:
		return "parse degraded"
	case NoTargetFound:
		return "no target found"
	case InvalidConfiguration:
		return "invalid configuration"
	default:
		return "unknown"
	}
}

// Error is the monitor's error type
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrSourceUnavailable    = &Error{Kind: SourceUnavailable}
	ErrTimeout              = &Error{Kind: Timeout}
	ErrParseDegraded        = &Error{Kind: ParseDegraded}
	ErrNoTargetFound        = &Error{Kind: NoTargetFound}
	ErrInvalidConfiguration = &Error{Kind: InvalidConfiguration}
)

func newError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// classify wraps a source error into the monitor taxonomy
func classify(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, source.ErrTimeout) {
		return newError(Timeout, err, format, args...)
	}
	return newError(SourceUnavailable, err, format, args...)
}

// InvalidConfigf builds an InvalidConfiguration error
func InvalidConfigf(format string, args ...interface{}) error {
	return newError(InvalidConfiguration, nil, format, args...)
}
