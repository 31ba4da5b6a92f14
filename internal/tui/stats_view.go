package tui

import (
	"fmt"
	"strings"

	"github.com/rusenback/zfscachemon/internal/model"
	"github.com/rusenback/zfscachemon/internal/zfs"
)

const barLength = 20

// renderer turns tier snapshots into text. With color off it writes plain
// ASCII for pipes and -once.
type renderer struct {
	color bool
}

func (r renderer) paint(sev model.Severity, text string) string {
	if !r.color {
		return text
	}
	return severityStyle(sev).Render(text)
}

func (r renderer) muted(text string) string {
	if !r.color {
		return text
	}
	return mutedStyle.Render(text)
}

func (r renderer) bar(percent float64, sev model.Severity) string {
	if !r.color {
		return "[" + renderBar(percent, barLength, "#", ".") + "]"
	}
	return r.paint(sev, "|"+renderBar(percent, barLength, "█", "─")+"|")
}

// rows writes aligned "Label:  value" lines
func (r renderer) rows(pairs ...string) string {
	var s strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		label := fmt.Sprintf("%-13s", pairs[i]+":")
		if r.color {
			label = labelStyle.Render(label)
		}
		s.WriteString(label + pairs[i+1] + "\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r renderer) rated(value float64, rating model.Rating, sev model.Severity) string {
	return fmt.Sprintf("%s %s", r.bar(value, sev), r.paint(sev, fmt.Sprintf("%s (%s)", formatPercent(value), rating)))
}

// degraded renders the body of a tier without figures
func (r renderer) degraded(state model.TierState, reason string) string {
	text := state.String()
	if reason != "" {
		text += ": " + reason
	}
	if state == model.Unavailable {
		return r.paint(model.Critical, text)
	}
	return r.muted(text)
}

func (r renderer) arcSection(s model.ArcSnapshot) string {
	if s.State == model.Unavailable {
		return r.degraded(s.State, s.Reason)
	}

	rating, sev := s.Rating()
	return r.rows(
		"Hit Rate", r.rated(s.Stats.HitRate, rating, sev),
		"Cache Size", fmt.Sprintf("%s %s", r.bar(s.UsagePercent(), model.Ok), formatBytesRatio(s.Stats.Size, s.Stats.Target)),
		"Read Ops", formatOps(s.Stats.ReadOps),
		"Source", r.muted(s.Source),
	)
}

func (r renderer) l2arcSection(s model.L2ArcSnapshot) string {
	switch s.State {
	case model.Unavailable, model.Unconfigured:
		return r.degraded(s.State, s.Reason)
	case model.Idle:
		return r.rows(
			"Status", r.muted("idle, no reads since boot"),
			"Cache Size", zfs.FormatBytes(s.Stats.Size),
		)
	}

	rating, sev := s.Rating()
	return r.rows(
		"Hit Rate", r.rated(s.Stats.HitRate, rating, sev),
		"Cache Size", zfs.FormatBytes(s.Stats.Size),
		"Read Rate", formatRate(s.Stats.ReadBytes),
		"Operations", formatOps(s.Stats.Ops),
	)
}

// slogSection keeps the device visible in every state but Unconfigured
// and Unavailable.
func (r renderer) slogSection(s model.SlogSnapshot) string {
	switch s.State {
	case model.Unavailable, model.Unconfigured:
		return r.degraded(s.State, s.Reason)
	case model.Stale:
		return r.rows(
			"Device", s.Stats.Device,
			"Status", r.paint(model.Warning, "stale: "+s.Reason),
		)
	}

	rating, sev := s.Rating()
	latency := formatLatency(s.Stats.LatencyMs)
	if s.Stats.LatencyP99Ms > 0 {
		latency += r.muted(fmt.Sprintf(" (p99 %s)", formatLatency(s.Stats.LatencyP99Ms)))
	}
	return r.rows(
		"Device", s.Stats.Device,
		"Utilization", fmt.Sprintf("%s %s", r.bar(s.Stats.Utilization, sev), formatPercent(s.Stats.Utilization)),
		"Write Ops", formatOps(s.Stats.WriteOps),
		"Write Rate", formatRate(s.Stats.WriteBytes),
		"Latency", latency,
		"Health", r.paint(sev, fmt.Sprintf("%.0f/100 (%s)", s.Score(), rating)),
	)
}
