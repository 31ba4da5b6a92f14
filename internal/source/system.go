// internal/source/system.go
package source

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Config holds settings for the real sources
type Config struct {
	// Timeout bounds a command when the caller passes no timeout of its own.
	Timeout time.Duration
	// WaitDelay is how long to wait for output pipes after a command was
	// killed.
	WaitDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:   3 * time.Second,
		WaitDelay: 500 * time.Millisecond,
	}
}

// System reads from the running host
type System struct {
	cfg Config
}

// NewSystem creates sources backed by real commands and files
func NewSystem(cfg Config) *System {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.WaitDelay <= 0 {
		cfg.WaitDelay = DefaultConfig().WaitDelay
	}
	return &System{cfg: cfg}
}

// Run executes name with args. Output is only returned for a command that
// exited zero before the timeout; a timed out command yields ErrTimeout and
// nothing else, and one cut short by cancelling ctx yields ErrCanceled.
func (s *System) Run(ctx context.Context, name string, args []string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = s.cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := commandLine(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	cmd.WaitDelay = s.cfg.WaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return "", contextError(ctx, "exec", target)
	}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return "", &Error{Op: "exec", Target: target, Kind: ErrNotFound}
		case errors.Is(err, fs.ErrPermission):
			return "", &Error{Op: "exec", Target: target, Kind: ErrPermissionDenied}
		case errors.As(err, &exitErr):
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.Error()
			}
			return "", &Error{Op: "exec", Target: target, Kind: ErrNonZeroExit, Err: errors.New(msg)}
		default:
			return "", &Error{Op: "exec", Target: target, Kind: ErrNotFound, Err: err}
		}
	}

	return stdout.String(), nil
}

// ReadFile reads path as text
func (s *System) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", &Error{Op: "read", Target: path, Kind: ErrNotFound}
		case errors.Is(err, fs.ErrPermission):
			return "", &Error{Op: "read", Target: path, Kind: ErrPermissionDenied}
		default:
			return "", &Error{Op: "read", Target: path, Kind: ErrNotFound, Err: err}
		}
	}
	return string(data), nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
