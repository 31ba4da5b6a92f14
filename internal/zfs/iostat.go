package zfs

import (
	"bufio"
	"strings"
)

// header rows of zpool iostat start with one of these
var iostatHeaderWords = map[string]bool{
	"capacity":   true,
	"pool":       true,
	"NAME":       true,
	"operations": true,
	"bandwidth":  true,
	"total_wait": true,
}

// iostatRow is the write side of one device row. Latency is only present
// when iostat ran with -l.
type iostatRow struct {
	writeOps   uint64
	writeBytes uint64
	latencyMs  float64
	hasLatency bool
}

func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	return s != "" && strings.Trim(s, "- ") == ""
}

// parseIostatDevice finds the row for device in zpool iostat -v output.
// A row inside the logs section is preferred over a same-named row
// elsewhere.
func parseIostatDevice(text, device string) (iostatRow, []string, bool) {
	var inLogs bool
	var logsRow, anyRow []string

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if isSeparator(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 || iostatHeaderWords[parts[0]] {
			continue
		}

		topLevel := line[0] != ' ' && line[0] != '\t'
		if topLevel {
			inLogs = parts[0] == "logs"
			continue
		}

		if parts[0] != device || !isIostatData(parts) {
			continue
		}
		if inLogs && logsRow == nil {
			logsRow = parts
		}
		if anyRow == nil {
			anyRow = parts
		}
	}

	row := logsRow
	if row == nil {
		row = anyRow
	}
	if row == nil {
		return iostatRow{}, nil, false
	}

	f := &fields{source: "zpool iostat"}
	r := iostatRow{
		writeOps:   f.size("write ops", row[4]),
		writeBytes: f.size("write bandwidth", row[6]),
	}
	if len(row) > 8 {
		r.latencyMs = f.latency("write wait", row[8])
		r.hasLatency = true
	}
	return r, f.notes, true
}

// isIostatData checks the fixed columns name alloc free rops wops rbw wbw
// all look like values.
func isIostatData(parts []string) bool {
	if len(parts) < 7 {
		return false
	}
	for _, p := range parts[1:7] {
		if !numericLeading(p) {
			return false
		}
	}
	return true
}

// parseBlockStat returns io_ticks, the milliseconds the device spent doing
// I/O, from /sys/class/block/<dev>/stat.
func parseBlockStat(text string) (uint64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 10 || !integerPattern.MatchString(parts[9]) {
		return 0, false
	}
	f := &fields{source: "block stat"}
	return f.integer("io_ticks", parts[9]), true
}
