package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/zfscachemon/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	demoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0, 0, 0)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(1, 2)

	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // green
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387")) // orange
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")) // red/pink
)

func severityStyle(sev model.Severity) lipgloss.Style {
	switch sev {
	case model.Critical:
		return criticalStyle
	case model.Warning:
		return warningStyle
	default:
		return okStyle
	}
}
