package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 100

// View renders the TUI interface
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	header := m.renderHeader(width)
	if m.report == nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "Collecting ZFS statistics...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderTierPanels(width),
		m.renderHistoryPanel(width),
		m.renderFooter(),
	)
}

// renderHeader shows pool, refresh interval and collection time
func (m Model) renderHeader(width int) string {
	title := headerStyle.Render("ZFS Cache Monitor")
	info := fmt.Sprintf(" Pool: %s | Refresh: %s", m.poolName(), m.interval)
	if m.report != nil {
		info += " | Time: " + m.report.CollectedAt.Format("2006-01-02 15:04:05")
	}
	if m.demo {
		info += " " + demoStyle.Render("[demo]")
	}
	return truncateStyled(title+info, width)
}

func (m Model) poolName() string {
	if m.report == nil {
		return "-"
	}
	return m.report.Pool
}

func (m Model) renderFooter() string {
	return helpStyle.Render(fmt.Sprintf("[q] quit  refreshes every %s", m.interval))
}

// truncateStyled leaves styled text alone when it fits
func truncateStyled(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
