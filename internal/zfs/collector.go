package zfs

import (
	"context"
	"math"
	"path"
	"strconv"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/rusenback/zfscachemon/internal/logger"
	"github.com/rusenback/zfscachemon/internal/model"
	"github.com/rusenback/zfscachemon/internal/rate"
	"github.com/rusenback/zfscachemon/internal/source"
)

const (
	// DefaultTimeout bounds every command and file read
	DefaultTimeout = 3 * time.Second

	// write latency histogram range in microseconds, 1us to 60s
	latencyMinUs  = 1
	latencyMaxUs  = 60_000_000
	latencySigFig = 3

	blockStatRoot = "/sys/class/block"

	// zpool iostat without an interval prints averages since import, so
	// each tick takes its own sample of this length
	iostatSample = time.Second
)

// rate streams
const (
	streamArcReads    = "arc.reads"
	streamL2Ops       = "l2arc.ops"
	streamL2ReadBytes = "l2arc.read_bytes"
	streamIOTicks     = "slog.io_ticks."
)

// Collector gathers one Report per tick from a pool. It owns the rate
// baselines, the resolved log device, the topology cache and the latency
// histogram, so Collect must not be called concurrently.
type Collector struct {
	src      source.Sources
	pool     string
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	log      *logger.Logger

	rates    *rate.Calculator
	topology *textCache
	resolver deviceResolver
	latency  *hdrhistogram.Histogram
}

// Option configures a Collector
type Option func(*Collector)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// WithLogger sets the logger, the default discards everything
func WithLogger(l *logger.Logger) Option {
	return func(c *Collector) { c.log = l }
}

// WithTimeout sets the per-call timeout for commands
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) { c.timeout = d }
}

// WithInterval sets the refresh interval reported with each Report
func WithInterval(d time.Duration) Option {
	return func(c *Collector) { c.interval = d }
}

// NewCollector creates a collector for pool reading from src
func NewCollector(src source.Sources, pool string, opts ...Option) *Collector {
	c := &Collector{
		src:      src,
		pool:     pool,
		interval: time.Second,
		timeout:  DefaultTimeout,
		now:      time.Now,
		log:      logger.Discard(),
		rates:    rate.NewCalculator(),
		latency:  hdrhistogram.New(latencyMinUs, latencyMaxUs, latencySigFig),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.topology = newTextCache(TopologyTTL, c.now)
	return c
}

// Pool returns the monitored pool name
func (c *Collector) Pool() string {
	return c.pool
}

// ResolverState reports where the log device lookup stands
func (c *Collector) ResolverState() ResolverState {
	return c.resolver.state
}

// tick holds what is shared between tiers during one Collect
type tick struct {
	ctx context.Context
	at  time.Time

	kstat    *kstat
	kstatErr error
}

// Collect reads all three tiers. A failing tier becomes an Unavailable (or
// Stale) snapshot; the others are still collected.
func (c *Collector) Collect(ctx context.Context) model.Report {
	t := &tick{ctx: ctx, at: c.now()}

	report := model.Report{
		Pool:        c.pool,
		Interval:    c.interval,
		CollectedAt: t.at,
	}
	report.ARC = c.collectARC(t)
	report.L2ARC = c.collectL2ARC(t)
	report.SLOG = c.collectSLOG(t)
	return report
}

func (c *Collector) collectARC(t *tick) model.ArcSnapshot {
	for _, attempt := range arcstatAttempts {
		out, err := c.src.Run(t.ctx, "arcstat", attempt.args, c.timeout)
		if err != nil {
			c.log.Debug("%s failed: %v", attempt.name, classify(err, "arc"))
			continue
		}
		stats, notes, ok := parseArcstat(out, attempt.columns)
		c.degraded(notes)
		if !ok {
			c.log.Debug("%s output has no usable ARC columns", attempt.name)
			continue
		}
		return model.ArcSnapshot{State: model.Active, Stats: stats, Source: attempt.name}
	}

	k, err := c.kstat(t)
	if err != nil {
		c.log.Warning("ARC unavailable: %v", err)
		return model.ArcSnapshot{State: model.Unavailable, Reason: err.Error()}
	}
	arc, ok := k.arc()
	if !ok {
		reason := "arcstats has no ARC counters"
		c.log.Warning("ARC unavailable: %s", reason)
		return model.ArcSnapshot{State: model.Unavailable, Reason: reason}
	}

	arc.stats.ReadOps = perSecond(c.rates.Observe(streamArcReads, arc.reads, t.at))
	return model.ArcSnapshot{State: model.Active, Stats: arc.stats, Source: "arcstats"}
}

func (c *Collector) collectL2ARC(t *tick) model.L2ArcSnapshot {
	topo, err := c.poolTopology(t)
	if err != nil {
		c.log.Warning("L2ARC unavailable: %v", err)
		return model.L2ArcSnapshot{State: model.Unavailable, Reason: err.Error()}
	}
	if !hasSection(topo, "cache") {
		return model.L2ArcSnapshot{State: model.Unconfigured}
	}

	k, err := c.kstat(t)
	if err != nil {
		c.log.Warning("L2ARC unavailable: %v", err)
		return model.L2ArcSnapshot{State: model.Unavailable, Reason: err.Error()}
	}
	l2, ok := k.l2()
	if !ok {
		reason := "arcstats has no L2ARC counters"
		c.log.Warning("L2ARC unavailable: %s", reason)
		return model.L2ArcSnapshot{State: model.Unavailable, Reason: reason}
	}

	l2.stats.Ops = perSecond(c.rates.Observe(streamL2Ops, l2.ops, t.at))
	l2.stats.ReadBytes = perSecond(c.rates.Observe(streamL2ReadBytes, l2.readBytes, t.at))

	state := model.Active
	if l2.ops == 0 {
		state = model.Idle
	}
	return model.L2ArcSnapshot{State: state, Stats: l2.stats}
}

func (c *Collector) collectSLOG(t *tick) model.SlogSnapshot {
	dev, state, err := c.resolver.resolve(func() (string, error) {
		return c.poolTopology(t)
	})
	if err != nil {
		c.log.Warning("SLOG unavailable: %v", err)
		return model.SlogSnapshot{State: model.Unavailable, Reason: err.Error()}
	}
	if state == Absent {
		return model.SlogSnapshot{State: model.Unconfigured}
	}
	if state == Cached && c.log.DebugEnabled() {
		c.log.Debug("log device %s (%s), leaves %v", dev.name, dev.method, dev.leaves)
	}

	// from here on the device stays visible whatever the counters do
	stale := func(reason string) model.SlogSnapshot {
		c.log.Warning("SLOG %s stale: %s", dev.name, reason)
		return model.SlogSnapshot{
			State:  model.Stale,
			Stats:  model.SlogStats{Device: dev.name},
			Reason: reason,
		}
	}

	out, err := c.src.Run(t.ctx, "zpool", iostatArgs(c.pool), c.timeout+iostatSample)
	if err != nil {
		return stale(classify(err, "zpool iostat").Error())
	}
	row, notes, ok := parseIostatDevice(out, dev.name)
	c.degraded(notes)
	if !ok {
		return stale("device missing from zpool iostat output")
	}

	stats := model.SlogStats{
		Device:      dev.name,
		WriteOps:    row.writeOps,
		WriteBytes:  row.writeBytes,
		LatencyMs:   row.latencyMs,
		Utilization: c.utilization(dev.leaves, t.at),
	}
	if row.hasLatency && row.latencyMs > 0 {
		if err := c.latency.RecordValue(int64(math.Round(row.latencyMs * 1000))); err != nil {
			c.log.Debug("latency %.3fms out of histogram range", row.latencyMs)
		}
	}
	if c.latency.TotalCount() > 0 {
		stats.LatencyP99Ms = float64(c.latency.ValueAtQuantile(99)) / 1000
	}

	snapshot := model.SlogSnapshot{State: model.Active, Stats: stats}
	if stats.WriteOps == 0 && stats.WriteBytes == 0 {
		snapshot.State = model.Idle
	}
	return snapshot
}

// iostatArgs asks for one live sample with -y skipping the since-import
// report. -L resolves /dev/disk/by-id links so rows carry the same names as
// the topology and /sys/class/block.
func iostatArgs(pool string) []string {
	secs := strconv.Itoa(int(iostatSample / time.Second))
	return []string{"iostat", "-v", "-l", "-L", "-y", pool, secs, "1"}
}

// utilization is the busiest leaf's share of wall time spent doing I/O,
// from io_ticks. Leaves without a readable stat file are skipped.
func (c *Collector) utilization(leaves []string, at time.Time) float64 {
	var busiest float64
	for _, leaf := range leaves {
		text, err := c.src.ReadFile(path.Join(blockStatRoot, leaf, "stat"))
		if err != nil {
			c.log.Debug("no block stats for %s: %v", leaf, err)
			continue
		}
		ticks, ok := parseBlockStat(text)
		if !ok {
			c.log.Debug("unreadable block stats for %s", leaf)
			continue
		}
		// io_ticks is in ms, so ms/s divided by 10 is percent
		util := c.rates.Observe(streamIOTicks+leaf, ticks, at) / 10
		busiest = math.Max(busiest, math.Min(util, 100))
	}
	return busiest
}

// kstat reads arcstats at most once per tick
func (c *Collector) kstat(t *tick) (kstat, error) {
	if t.kstat == nil && t.kstatErr == nil {
		text, err := c.src.ReadFile(ArcstatsPath)
		if err != nil {
			t.kstatErr = classify(err, "reading arcstats")
		} else {
			k := parseKstat(text)
			c.degraded(k.notes)
			t.kstat = &k
		}
	}
	if t.kstatErr != nil {
		return kstat{}, t.kstatErr
	}
	return *t.kstat, nil
}

// poolTopology returns zpool status output, cached for TopologyTTL. Leaves
// are listed by their real device names (-L), the ones /sys/class/block
// knows.
func (c *Collector) poolTopology(t *tick) (string, error) {
	key := "status:" + c.pool
	if text, ok := c.topology.get(key); ok {
		return text, nil
	}
	out, err := c.src.Run(t.ctx, "zpool", []string{"status", "-L", c.pool}, c.timeout)
	if err != nil {
		return "", classify(err, "zpool status %s", c.pool)
	}
	c.topology.set(key, out)
	return out, nil
}

func (c *Collector) degraded(notes []string) {
	for _, n := range notes {
		c.log.Debug("%v", newError(ParseDegraded, nil, "%s", n))
	}
}

func perSecond(r float64) uint64 {
	return uint64(math.Round(r))
}
