package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// three panels side by side need at least this much room
const wideLayoutWidth = 150

// renderTierPanels lays out the ARC, L2ARC and SLOG panels, in a row when
// the terminal is wide enough and stacked otherwise.
func (m Model) renderTierPanels(width int) string {
	r := renderer{color: true}
	titles := []string{"ARC (Primary RAM Cache)", "L2ARC (Secondary SSD Cache)", "SLOG (Synchronous Write Log)"}
	bodies := []string{
		r.arcSection(m.report.ARC),
		r.l2arcSection(m.report.L2ARC),
		r.slogSection(m.report.SLOG),
	}

	if width >= wideLayoutWidth {
		panelWidth := width / 3
		panels := make([]string, len(bodies))
		for i := range bodies {
			panels[i] = renderPanel(titles[i], bodies[i], panelWidth)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	}

	panels := make([]string, len(bodies))
	for i := range bodies {
		panels[i] = renderPanel(titles[i], bodies[i], width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// renderPanel renders one bordered tier panel
func renderPanel(title, body string, width int) string {
	return panelStyle.
		Width(width - 4).
		Render(titleStyle.Render(title) + "\n\n" + body)
}
