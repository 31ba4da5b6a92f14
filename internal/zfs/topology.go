package zfs

import (
	"regexp"
	"strings"
)

var mirrorPattern = regexp.MustCompile(`^mirror-\d+$`)

// sectionKeywords end a vdev class section in zpool status/iostat output
var sectionKeywords = map[string]bool{
	"logs":    true,
	"cache":   true,
	"spares":  true,
	"special": true,
	"dedup":   true,
	"errors:": true,
}

// topologyLine is one non-empty line of zpool status
type topologyLine struct {
	indent int
	name   string
	blank  bool
}

func splitTopology(text string) []topologyLine {
	raw := strings.Split(text, "\n")
	lines := make([]topologyLine, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimLeft(l, " \t")
		parts := strings.Fields(trimmed)
		if len(parts) == 0 {
			lines = append(lines, topologyLine{blank: true})
			continue
		}
		lines = append(lines, topologyLine{indent: len(l) - len(trimmed), name: parts[0]})
	}
	return lines
}

// hasSection reports whether the topology has a section header such as
// "cache" or "logs" on a line of its own.
func hasSection(text, keyword string) bool {
	for _, l := range strings.Split(text, "\n") {
		if parts := strings.Fields(l); len(parts) == 1 && parts[0] == keyword {
			return true
		}
	}
	return false
}

// logDevice is the resolved write-log vdev. Leaves are the block devices
// under it, or the device itself when it is a single disk.
type logDevice struct {
	name   string
	leaves []string
	method string
}

type logDeviceStrategy struct {
	name string
	find func([]topologyLine) (logDevice, bool)
}

// logDeviceStrategies are tried in order, first hit wins
var logDeviceStrategies = []logDeviceStrategy{
	{"logs section", findLogsSection},
	{"mirror with member", findMirrorWithMember},
	{"first mirror", findFirstMirror},
}

// findLogDevice runs the resolution strategies over zpool status text
func findLogDevice(text string) (logDevice, bool) {
	lines := splitTopology(text)
	for _, s := range logDeviceStrategies {
		if dev, ok := s.find(lines); ok {
			dev.method = s.name
			return dev, true
		}
	}
	return logDevice{}, false
}

// findLogsSection collects device lines after a "logs" header until a blank
// line or another section keyword.
func findLogsSection(lines []topologyLine) (logDevice, bool) {
	start := -1
	for i, l := range lines {
		if !l.blank && l.name == "logs" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return logDevice{}, false
	}

	var dev logDevice
	top := -1
scan:
	for _, l := range lines[start:] {
		if l.blank || sectionKeywords[l.name] {
			break
		}
		switch {
		case top < 0:
			dev.name = l.name
			top = l.indent
		case l.indent > top:
			dev.leaves = append(dev.leaves, l.name)
		default:
			// a second top-level log vdev, only the first is monitored
			break scan
		}
	}
	if dev.name == "" {
		return logDevice{}, false
	}
	if len(dev.leaves) == 0 {
		dev.leaves = []string{dev.name}
	}
	return dev, true
}

// findMirrorWithMember takes a mirror-N grouping line directly followed by
// a more indented member line.
func findMirrorWithMember(lines []topologyLine) (logDevice, bool) {
	for i := 0; i+1 < len(lines); i++ {
		l, next := lines[i], lines[i+1]
		if l.blank || !mirrorPattern.MatchString(l.name) {
			continue
		}
		if next.blank || next.indent <= l.indent || mirrorPattern.MatchString(next.name) || sectionKeywords[next.name] {
			continue
		}

		dev := logDevice{name: l.name}
		for _, m := range lines[i+1:] {
			if m.blank || m.indent <= l.indent {
				break
			}
			dev.leaves = append(dev.leaves, m.name)
		}
		return dev, true
	}
	return logDevice{}, false
}

// findFirstMirror is the last resort: any mirror-N label
func findFirstMirror(lines []topologyLine) (logDevice, bool) {
	for _, l := range lines {
		if !l.blank && mirrorPattern.MatchString(l.name) {
			return logDevice{name: l.name}, true
		}
	}
	return logDevice{}, false
}
