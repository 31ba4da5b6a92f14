package zfs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^\d+$`)
	decimalPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	sizePattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)([BKMGTPbkmgtp])?$`)
	latencyPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ns|us|ms|s)$`)
)

var sizeUnits = []string{"B", "K", "M", "G", "T", "P"}

// ParseSize converts a size token such as "12.3G" to bytes (base 1024).
// A bare number is bytes.
func ParseSize(tok string) (uint64, bool) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(tok))
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	mult := 1.0
	if m[2] != "" {
		exp := strings.Index("BKMGTP", strings.ToUpper(m[2]))
		mult = math.Pow(1024, float64(exp))
	}

	v := math.Round(num * mult)
	if v >= math.MaxUint64 {
		return 0, false
	}
	return uint64(v), true
}

// FormatBytes renders bytes with one decimal place and a single letter
// unit: 0 is "0.0B", 1024 is "1.0K", 1610612736 is "1.5G".
func FormatBytes(bytes uint64) string {
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f%s", size, sizeUnits[unit])
}

// parseLatency converts "245us", "1ms", "3s" or "12ns" to milliseconds
func parseLatency(tok string) (float64, bool) {
	m := latencyPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "ns":
		return num / 1e6, true
	case "us":
		return num / 1e3, true
	case "s":
		return num * 1e3, true
	default:
		return num, true
	}
}

// numericLeading reports whether tok looks like a value column: a number,
// a size, a latency, or zpool's "-" placeholder.
func numericLeading(tok string) bool {
	return tok == "-" || (tok != "" && tok[0] >= '0' && tok[0] <= '9')
}

// fields validates tokens taken from free-form text. An invalid token is
// replaced by 0 and noted; it never fails the whole parse.
type fields struct {
	source string
	notes  []string
}

func (f *fields) degrade(name, tok, expected string) {
	f.notes = append(f.notes, fmt.Sprintf("%s: %s %q is not %s, using 0", f.source, name, tok, expected))
}

func (f *fields) integer(name, tok string) uint64 {
	if tok == "-" {
		return 0
	}
	if !integerPattern.MatchString(tok) {
		f.degrade(name, tok, "an integer")
		return 0
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		f.degrade(name, tok, "an integer")
		return 0
	}
	return v
}

func (f *fields) decimal(name, tok string) float64 {
	if tok == "-" {
		return 0
	}
	if !decimalPattern.MatchString(tok) {
		f.degrade(name, tok, "a decimal")
		return 0
	}
	v, _ := strconv.ParseFloat(tok, 64)
	return v
}

func (f *fields) size(name, tok string) uint64 {
	if tok == "-" {
		return 0
	}
	v, ok := ParseSize(tok)
	if !ok {
		f.degrade(name, tok, "a size")
	}
	return v
}

func (f *fields) latency(name, tok string) float64 {
	if tok == "-" {
		return 0
	}
	v, ok := parseLatency(tok)
	if !ok {
		f.degrade(name, tok, "a latency")
	}
	return v
}

// percent returns a/(a+b)*100, or 0 when both are zero
func percent(a, b uint64) float64 {
	total := a + b
	if total == 0 {
		return 0
	}
	return float64(a) / float64(total) * 100.0
}
