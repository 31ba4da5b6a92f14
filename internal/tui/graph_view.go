package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	arcGraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	l2GraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	slogGraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// history is a bounded series of 0-100 values, oldest first
type history struct {
	values []float64
	max    int
}

func newHistory(max int) history {
	return history{values: make([]float64, 0, max), max: max}
}

func (h history) push(v float64) history {
	values := append(h.values, v)
	if len(values) > h.max {
		values = values[len(values)-h.max:]
	}
	return history{values: values, max: h.max}
}

// renderSparkline draws the last width points on a fixed 0-100 scale so
// tiers can be compared by eye.
func renderSparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}
	start := 0
	if len(data) > width {
		start = len(data) - width
	}

	var result strings.Builder
	for i := len(data) - start; i < width; i++ {
		result.WriteString(" ")
	}
	for _, value := range data[start:] {
		idx := int(value / 100 * float64(len(sparkChars)-1))
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		result.WriteString(sparkChars[idx])
	}
	return result.String()
}

// renderHistoryPanel shows hit rates and the log score over the session
func (m Model) renderHistoryPanel(width int) string {
	lineWidth := width - 30
	if lineWidth < 10 {
		lineWidth = 10
	}

	line := func(label string, h history, style lipgloss.Style) string {
		current := "   -"
		if n := len(h.values); n > 0 {
			current = fmt.Sprintf("%5.1f", h.values[n-1])
		}
		return fmt.Sprintf("%-10s %s %s", label, style.Render(renderSparkline(h.values, lineWidth)), current)
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Session History") + "\n\n")
	s.WriteString(line("ARC hit%", m.arcHistory, arcGraphStyle) + "\n")
	s.WriteString(line("L2 hit%", m.l2History, l2GraphStyle) + "\n")
	s.WriteString(line("SLOG", m.slogHistory, slogGraphStyle) + "\n")
	s.WriteString(mutedStyle.Render(fmt.Sprintf("◄─ %s ago", m.interval*time.Duration(len(m.arcHistory.values)))))

	return panelStyle.Width(width - 4).Render(s.String())
}
