package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd sends a tick message once the interval has passed
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd runs one collection off the UI goroutine. The collector is
// never called again before its report has come back.
func collectCmd(ctx context.Context, c Collector) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{report: c.Collect(ctx)}
	}
}
