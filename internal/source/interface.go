// internal/source/interface.go
package source

import (
	"context"
	"time"
)

// Runner executes an external command and returns its standard output.
// Implementations must give up once timeout has passed.
type Runner interface {
	Run(ctx context.Context, name string, args []string, timeout time.Duration) (string, error)
}

// FileReader reads a kernel statistics file as text.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// Sources is everything the collector reads from. Swappable for tests and
// demo mode.
type Sources interface {
	Runner
	FileReader
}

// Make sure both implementations satisfy the interface
var (
	_ Sources = (*System)(nil)
	_ Sources = (*Demo)(nil)
)
