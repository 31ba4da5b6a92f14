package zfs

import (
	"bufio"
	"strings"

	"github.com/rusenback/zfscachemon/internal/model"
)

// arcstatFields is the explicit field selection tried first
var arcstatFields = []string{"hit%", "miss%", "read", "arcsz", "c"}

// arcstatAttempt is one way of running arcstat. columns names the value
// columns when the output carries no header.
type arcstatAttempt struct {
	name    string
	args    []string
	columns []string
}

var arcstatAttempts = []arcstatAttempt{
	{name: "arcstat", args: []string{"-f", strings.Join(arcstatFields, ","), "1", "1"}, columns: arcstatFields},
	{name: "arcstat (default fields)", args: []string{"1", "1"}},
	{name: "arcstat (snapshot)"},
}

// parseArcstat reads arcstat output. Columns are matched by header name
// when a header is present, otherwise by the positional column list. The
// read column is already a per-second figure.
func parseArcstat(text string, columns []string) (model.ArcStats, []string, bool) {
	var header, values []string

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if isHeaderRow(parts) {
			header = parts
			continue
		}
		// arcstat repeats for every interval, the last row is the freshest
		values = parts
	}

	if header == nil {
		header = columns
	}
	if header == nil || values == nil || len(values) != len(header) {
		return model.ArcStats{}, nil, false
	}

	f := &fields{source: "arcstat"}
	var stats model.ArcStats
	var haveHit, haveMiss, haveSize bool

	for i, col := range header {
		tok := values[i]
		switch col {
		case "hit%":
			stats.HitRate = f.decimal(col, tok)
			haveHit = true
		case "miss%":
			stats.MissRate = f.decimal(col, tok)
			haveMiss = true
		case "read":
			stats.ReadOps = f.size(col, tok)
		case "arcsz", "size":
			stats.Size = f.size(col, tok)
			haveSize = true
		case "c":
			stats.Target = f.size(col, tok)
		}
	}

	switch {
	case haveHit && !haveMiss:
		stats.MissRate = 100 - stats.HitRate
	case haveMiss && !haveHit:
		stats.HitRate = 100 - stats.MissRate
	}

	if !(haveHit || haveMiss) || !haveSize || stats.Size == 0 {
		return model.ArcStats{}, f.notes, false
	}
	return stats, f.notes, true
}

// isHeaderRow reports whether every token is a label rather than a value
func isHeaderRow(parts []string) bool {
	for _, p := range parts {
		if numericLeading(p) {
			return false
		}
	}
	return true
}
