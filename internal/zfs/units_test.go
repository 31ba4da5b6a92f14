package zfs

import (
	"math"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		tok  string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"1024", 1024, true},
		{"1K", 1024, true},
		{"1k", 1024, true},
		{"1.5K", 1536, true},
		{"2M", 2 << 20, true},
		{"2.25M", 2359296, true},
		{"12.0M", 12 << 20, true},
		{"1.5G", 1610612736, true},
		{"1T", 1 << 40, true},
		{"1P", 1 << 50, true},
		{"512B", 512, true},
		{"", 0, false},
		{"-", 0, false},
		{"invalid", 0, false},
		{"100X", 0, false},
		{"1.2.3K", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseSize(tt.tok)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSize(%q) = %d, %v; want %d, %v", tt.tok, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{1 << 20, "1.0M"},
		{1_610_612_736, "1.5G"},
		{1 << 40, "1.0T"},
		{1 << 50, "1.0P"},
		{1 << 60, "1024.0P"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, b := range []uint64{0, 1024, 1536, 1 << 20, 1_610_612_736, 3 << 40} {
		back, ok := ParseSize(FormatBytes(b))
		if !ok || back != b {
			t.Errorf("ParseSize(FormatBytes(%d)) = %d, %v", b, back, ok)
		}
	}
}

func TestParseLatency(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"1ms", 1, true},
		{"612us", 0.612, true},
		{"3s", 3000, true},
		{"500ns", 0.0005, true},
		{"1.5ms", 1.5, true},
		{"fast", 0, false},
		{"12", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseLatency(tt.tok)
		if ok != tt.ok || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parseLatency(%q) = %v, %v; want %v, %v", tt.tok, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFieldsDegradeToZero(t *testing.T) {
	f := &fields{source: "test"}

	if v := f.integer("wops", "12x"); v != 0 {
		t.Errorf("integer = %d", v)
	}
	if v := f.size("wbw", "lots"); v != 0 {
		t.Errorf("size = %d", v)
	}
	if v := f.decimal("hit%", "n/a"); v != 0 {
		t.Errorf("decimal = %v", v)
	}
	if v := f.latency("wait", "soon"); v != 0 {
		t.Errorf("latency = %v", v)
	}
	if len(f.notes) != 4 {
		t.Fatalf("notes = %v, want 4", f.notes)
	}

	// zpool's placeholder is a legitimate zero
	f.notes = nil
	f.integer("wops", "-")
	f.size("wbw", "-")
	if len(f.notes) != 0 {
		t.Fatalf("placeholder produced notes: %v", f.notes)
	}
}

func TestPercentZeroTotal(t *testing.T) {
	if got := percent(0, 0); got != 0 {
		t.Fatalf("percent(0, 0) = %v", got)
	}
	if got := percent(1, 3); got != 25 {
		t.Fatalf("percent(1, 3) = %v", got)
	}
}
