// Package config turns the command line and environment into a Config.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rusenback/zfscachemon/internal/zfs"
)

// DemoEnv enables demo mode when set to "true"
const DemoEnv = "DEMO_MODE"

// Config holds everything main needs to start monitoring
type Config struct {
	Pool     string // empty means the first imported pool
	Interval time.Duration
	Timeout  time.Duration // per command
	Demo     bool
	Once     bool // print one report and exit
	Plain    bool // no TUI even on a terminal
	Debug    bool
	LogFile  string
}

func DefaultConfig() Config {
	return Config{
		Interval: 2 * time.Second,
		Timeout:  zfs.DefaultTimeout,
		LogFile:  "zfscachemon.log",
	}
}

// Parse reads flags and the [POOL] [INTERVAL] positional arguments. The
// interval argument is whole seconds or a Go duration. getenv is usually
// os.Getenv. Usage and flag errors are written to output.
func Parse(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Pool, "pool", cfg.Pool, "ZFS pool to monitor (or first positional arg, default: first imported pool)")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "refresh interval (or second positional arg, in seconds)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout for each zpool/arcstat command")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "use built-in sample data instead of the system (also "+DemoEnv+"=true)")
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "print a single report and exit")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "plain text output instead of the TUI")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug log lines to -log-file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file used with -debug")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] [POOL] [INTERVAL]\n\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return cfg, zfs.InvalidConfigf("too many arguments: %s", strings.Join(rest, " "))
	}
	if len(rest) > 0 {
		cfg.Pool = rest[0]
	}
	if len(rest) > 1 {
		d, err := parseInterval(rest[1])
		if err != nil {
			return cfg, err
		}
		cfg.Interval = d
	}

	if v := getenv(DemoEnv); v != "" {
		if on, err := strconv.ParseBool(v); err == nil && on {
			cfg.Demo = true
		}
	}

	return cfg, cfg.Validate()
}

func parseInterval(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, zfs.InvalidConfigf("invalid interval %q: want seconds or a duration like 5s", s)
	}
	return d, nil
}

// Validate rejects settings the monitor cannot run with
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return zfs.InvalidConfigf("refresh interval must be positive, got %s", c.Interval)
	}
	if c.Timeout <= 0 {
		return zfs.InvalidConfigf("command timeout must be positive, got %s", c.Timeout)
	}
	if c.Debug && c.LogFile == "" {
		return zfs.InvalidConfigf("-debug needs a -log-file")
	}
	return nil
}
