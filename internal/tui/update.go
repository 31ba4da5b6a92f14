package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/zfscachemon/internal/model"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		// the next tick is only scheduled once a report is in, so there is
		// never more than one collection running
		if m.collecting {
			return m, nil
		}
		m.collecting = true
		return m, collectCmd(m.ctx, m.collector)

	case reportMsg:
		m.collecting = false
		m.ticks++
		report := msg.report
		m.report = &report
		m.record(report)
		m.log.Debug("tick %d: arc=%s l2arc=%s slog=%s", m.ticks, report.ARC.State, report.L2ARC.State, report.SLOG.State)
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// record appends the figures of a report to the sparkline history. Tiers
// without figures this tick are skipped rather than drawn as zero.
func (m *Model) record(r model.Report) {
	if r.ARC.State == model.Active {
		m.arcHistory = m.arcHistory.push(r.ARC.Stats.HitRate)
	}
	if r.L2ARC.State == model.Active {
		m.l2History = m.l2History.push(r.L2ARC.Stats.HitRate)
	}
	if r.SLOG.State == model.Active || r.SLOG.State == model.Idle {
		m.slogHistory = m.slogHistory.push(r.SLOG.Score())
	}
}
