package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/zfscachemon/internal/logger"
	"github.com/rusenback/zfscachemon/internal/model"
)

// Collector produces one report per call. *zfs.Collector satisfies it.
type Collector interface {
	Collect(ctx context.Context) model.Report
}

// Model represents the TUI application state
type Model struct {
	collector  Collector
	ctx        context.Context
	interval   time.Duration
	demo       bool
	log        *logger.Logger
	report     *model.Report
	collecting bool
	ticks      int
	width      int
	height     int

	// in-memory history for the sparklines, never persisted
	arcHistory    history
	l2History     history
	slogHistory   history
	maxDataPoints int
}

// Message types for Bubbletea update loop
type tickMsg time.Time

type reportMsg struct {
	report model.Report
}

// Options configures NewModel
type Options struct {
	Interval time.Duration
	Demo     bool
	Logger   *logger.Logger
}

// NewModel creates a new TUI model. ctx is handed to every collection and
// should be cancelled when the program exits.
func NewModel(ctx context.Context, collector Collector, opts Options) Model {
	maxPoints := 120
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return Model{
		collector:     collector,
		ctx:           ctx,
		interval:      opts.Interval,
		demo:          opts.Demo,
		log:           log,
		collecting:    true,
		maxDataPoints: maxPoints,
		arcHistory:    newHistory(maxPoints),
		l2History:     newHistory(maxPoints),
		slogHistory:   newHistory(maxPoints),
	}
}

// Init starts the first collection right away
func (m Model) Init() tea.Cmd {
	return collectCmd(m.ctx, m.collector)
}

// Report returns the latest report, nil before the first one arrives
func (m Model) Report() *model.Report {
	return m.report
}
