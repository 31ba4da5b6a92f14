package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rusenback/zfscachemon/internal/model"
)

// PlainOptions configures RunPlain
type PlainOptions struct {
	Interval time.Duration
	Demo     bool
	Once     bool
	Width    int // 0 means 80
}

// RunPlain prints uncoloured reports to w, for pipes and dumb terminals.
// With Once it takes two samples one interval apart, so rates are real,
// prints the second and returns. Cancelling ctx stops between reports.
func RunPlain(ctx context.Context, w io.Writer, c Collector, opts PlainOptions) error {
	if opts.Once {
		c.Collect(ctx)
		if !sleep(ctx, opts.Interval) {
			return nil
		}
		return WritePlain(w, c.Collect(ctx), opts)
	}

	for {
		if err := WritePlain(w, c.Collect(ctx), opts); err != nil {
			return err
		}
		if !sleep(ctx, opts.Interval) {
			return nil
		}
	}
}

// sleep waits for d and reports false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// WritePlain writes one report as plain text
func WritePlain(w io.Writer, r model.Report, opts PlainOptions) error {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	pr := renderer{color: false}

	var s strings.Builder
	s.WriteString(centered(" ZFS Cache Performance Monitor ", width, '=') + "\n")
	s.WriteString(fmt.Sprintf("Pool: %s | Refresh: %s | Time: %s", r.Pool, r.Interval, r.CollectedAt.Format("2006-01-02 15:04:05")))
	if opts.Demo {
		s.WriteString(" [demo]")
	}
	s.WriteString("\n\n")

	section := func(title, body string) {
		s.WriteString(title + "\n")
		for _, line := range strings.Split(body, "\n") {
			s.WriteString("    " + line + "\n")
		}
		s.WriteString("\n")
	}
	section("ARC (Primary RAM Cache)", pr.arcSection(r.ARC))
	section("L2ARC (Secondary SSD Cache)", pr.l2arcSection(r.L2ARC))
	section("SLOG (Synchronous Write Log)", pr.slogSection(r.SLOG))

	s.WriteString(strings.Repeat("=", width) + "\n")

	_, err := io.WriteString(w, s.String())
	return err
}

func centered(title string, width int, pad rune) string {
	n := width - len([]rune(title))
	if n <= 0 {
		return title
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + title + strings.Repeat(string(pad), n-left)
}
