package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/rusenback/zfscachemon/internal/zfs"
)

func noEnv(string) string { return "" }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: DefaultConfig(),
		},
		{
			name: "positional pool and seconds",
			args: []string{"data", "5"},
			want: Config{Pool: "data", Interval: 5 * time.Second, Timeout: zfs.DefaultTimeout, LogFile: "zfscachemon.log"},
		},
		{
			name: "positional duration",
			args: []string{"data", "1500ms"},
			want: Config{Pool: "data", Interval: 1500 * time.Millisecond, Timeout: zfs.DefaultTimeout, LogFile: "zfscachemon.log"},
		},
		{
			name: "flags",
			args: []string{"-pool", "tank", "-interval", "10s", "-timeout", "1s", "-once", "-plain", "-debug", "-log-file", "/tmp/x.log"},
			want: Config{Pool: "tank", Interval: 10 * time.Second, Timeout: time.Second, Once: true, Plain: true, Debug: true, LogFile: "/tmp/x.log"},
		},
		{
			name: "demo from env",
			env:  map[string]string{DemoEnv: "true"},
			want: Config{Interval: 2 * time.Second, Timeout: zfs.DefaultTimeout, Demo: true, LogFile: "zfscachemon.log"},
		},
		{
			name: "env not true",
			env:  map[string]string{DemoEnv: "nope"},
			want: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		getenv := func(k string) string { return tt.env[k] }
		got, err := Parse("zfscachemon", tt.args, getenv, io.Discard)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero interval", []string{"data", "0"}},
		{"negative interval", []string{"-interval", "-1s"}},
		{"bad interval", []string{"data", "often"}},
		{"zero timeout", []string{"-timeout", "0s"}},
		{"too many args", []string{"data", "2", "extra"}},
		{"debug without file", []string{"-debug", "-log-file", ""}},
	}

	for _, tt := range tests {
		_, err := Parse("zfscachemon", tt.args, noEnv, io.Discard)
		if !errors.Is(err, zfs.ErrInvalidConfiguration) {
			t.Errorf("%s: err = %v, want invalid configuration", tt.name, err)
		}
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse("zfscachemon", []string{"-h"}, noEnv, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}
