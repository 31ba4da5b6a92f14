package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger writes named, leveled lines. Debug lines are dropped unless debug
// was enabled.
type Logger struct {
	name   string
	logger *log.Logger
	debug  bool
}

// New creates a logger writing to w
func New(w io.Writer, name string, debug bool) *Logger {
	return &Logger{
		name:   name,
		logger: log.New(w, "", log.LstdFlags),
		debug:  debug,
	}
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return New(io.Discard, "", false)
}

// OpenFile opens path for appending and returns a root logger on it. The
// file is shared with bubbletea's own logging so the TUI never writes log
// lines onto its screen.
func OpenFile(path string, debug bool) (*Logger, *os.File, error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return New(f, "", debug), f, nil
}

// Named returns a logger sharing the output with a different name
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: name, logger: l.logger, debug: l.debug}
}

// DebugEnabled reports whether Debug lines are written
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// Debug logs diagnostic messages
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.print("DEBUG", format, args...)
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.print("INFO", format, args...)
}

// Warning logs recoverable problems
func (l *Logger) Warning(format string, args ...interface{}) {
	l.print("WARNING", format, args...)
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.print("ERROR", format, args...)
}

func (l *Logger) print(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.name == "" {
		l.logger.Printf("%s: %s", level, msg)
		return
	}
	l.logger.Printf("[%s] %s: %s", l.name, level, msg)
}
