package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/rusenback/zfscachemon/internal/zfs"
)

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// formatBytesRatio renders "46.3G/46.5G"
func formatBytesRatio(current, total uint64) string {
	return zfs.FormatBytes(current) + "/" + zfs.FormatBytes(total)
}

// formatRate renders bytes per second
func formatRate(bytesPerSecond uint64) string {
	return zfs.FormatBytes(bytesPerSecond) + "/s"
}

func formatOps(ops uint64) string {
	return fmt.Sprintf("%d/s", ops)
}

func formatLatency(ms float64) string {
	return fmt.Sprintf("%.1fms", ms)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// renderBar draws a fixed width bar for a 0-100 value
func renderBar(percent float64, length int, fill, empty string) string {
	filled := int(math.Round(percent / 100 * float64(length)))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat(fill, filled) + strings.Repeat(empty, length-filled)
}
