// cmd/zfscachemon/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/zfscachemon/internal/config"
	"github.com/rusenback/zfscachemon/internal/logger"
	"github.com/rusenback/zfscachemon/internal/source"
	"github.com/rusenback/zfscachemon/internal/tui"
	"github.com/rusenback/zfscachemon/internal/zfs"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse("zfscachemon", os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}

	log := logger.Discard()
	if cfg.Debug {
		l, f, err := logger.OpenFile(cfg.LogFile, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			return 1
		}
		defer f.Close()
		log = l
	}

	// Pick data source
	var src source.Sources
	if cfg.Demo {
		demo, err := source.NewDemo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to load demo data: %v\n", err)
			return 1
		}
		src = demo
	} else {
		src = source.NewSystem(source.Config{Timeout: cfg.Timeout})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := zfs.SelectPool(ctx, src, cfg.Pool, cfg.Timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		if errors.Is(err, source.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "\nMake sure ZFS is installed and zpool is on PATH,")
			fmt.Fprintf(os.Stderr, "or try the demo: %s=true zfscachemon\n", config.DemoEnv)
		}
		return 1
	}
	log.Info("monitoring pool %s every %s (demo=%v)", pool, cfg.Interval, cfg.Demo)

	collector := zfs.NewCollector(src, pool,
		zfs.WithInterval(cfg.Interval),
		zfs.WithTimeout(cfg.Timeout),
		zfs.WithLogger(log.Named("collector")),
	)

	stdout := int(os.Stdout.Fd())
	interactive := !cfg.Once && !cfg.Plain && term.IsTerminal(stdout)
	if !interactive {
		width := 80
		if term.IsTerminal(stdout) {
			if w, _, err := term.GetSize(stdout); err == nil && w > 0 {
				width = w
			}
		}
		err := tui.RunPlain(ctx, os.Stdout, collector, tui.PlainOptions{
			Interval: cfg.Interval,
			Demo:     cfg.Demo,
			Once:     cfg.Once,
			Width:    width,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			return 1
		}
		return 0
	}

	// Start TUI
	m := tui.NewModel(ctx, collector, tui.Options{
		Interval: cfg.Interval,
		Demo:     cfg.Demo,
		Logger:   log.Named("tui"),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	return 0
}
