// internal/model/stats.go
package model

import "time"

// TierState tells the presentation layer how to read a tier snapshot.
type TierState int

const (
	// Unavailable means acquisition failed this tick.
	Unavailable TierState = iota
	// Unconfigured means the pool has no device for this tier.
	Unconfigured
	// Idle means the tier is configured but saw no operations.
	Idle
	// Active means the tier is configured and has live counters.
	Active
	// Stale means the device is known but its counters could not be
	// refreshed this tick. Counters are zeroed.
	Stale
)

func (s TierState) String() string {
	switch s {
	case Unavailable:
		return "unavailable"
	case Unconfigured:
		return "not configured"
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Configured reports whether the tier has a device behind it.
func (s TierState) Configured() bool {
	return s == Idle || s == Active || s == Stale
}

// ArcStats holds primary cache (ARC) figures
type ArcStats struct {
	HitRate  float64 // 0-100
	MissRate float64 // 0-100
	Size     uint64  // Current size in bytes
	Target   uint64  // Target size in bytes, Size may exceed it for a while
	ReadOps  uint64  // Reads per second
}

// L2ArcStats holds secondary cache device figures
type L2ArcStats struct {
	HitRate   float64
	MissRate  float64
	Size      uint64 // Bytes on the cache device
	ReadBytes uint64 // Bytes read per second
	Ops       uint64 // Hits+misses per second
}

// SlogStats holds write-log device figures
type SlogStats struct {
	Device       string  // e.g. "mirror-1" or "nvme1n1p3"
	WriteOps     uint64  // Writes per second
	WriteBytes   uint64  // Bytes written per second
	Utilization  float64 // 0-100
	LatencyMs    float64 // Average write wait
	LatencyP99Ms float64 // p99 of LatencyMs over the session
}

// ArcSnapshot is the ARC tier as seen in one tick.
type ArcSnapshot struct {
	State  TierState
	Stats  ArcStats
	Source string // strategy that produced the figures
	Reason string // why the tier is degraded, if it is
}

// Rating classifies the hit rate.
func (s ArcSnapshot) Rating() (Rating, Severity) {
	return Classify(s.Stats.HitRate, ArcThresholds.Excellent, ArcThresholds.Good)
}

// UsagePercent is size relative to target, 0 when the target is unknown.
func (s ArcSnapshot) UsagePercent() float64 {
	if s.Stats.Target == 0 {
		return 0
	}
	return float64(s.Stats.Size) / float64(s.Stats.Target) * 100.0
}

// L2ArcSnapshot is the L2ARC tier as seen in one tick.
type L2ArcSnapshot struct {
	State  TierState
	Stats  L2ArcStats
	Reason string
}

// Rating classifies the hit rate.
func (s L2ArcSnapshot) Rating() (Rating, Severity) {
	return Classify(s.Stats.HitRate, L2ArcThresholds.Excellent, L2ArcThresholds.Good)
}

// SlogSnapshot is the write-log tier as seen in one tick.
type SlogSnapshot struct {
	State  TierState
	Stats  SlogStats
	Reason string
}

// Score is the composite health score, see SlogScore.
func (s SlogSnapshot) Score() float64 {
	return SlogScore(s.Stats.Utilization, s.Stats.LatencyMs)
}

// Rating classifies the composite score.
func (s SlogSnapshot) Rating() (Rating, Severity) {
	return Classify(s.Score(), SlogThresholds.Excellent, SlogThresholds.Good)
}

// Report is everything collected in one refresh tick. It holds values only,
// so the receiver may keep it as long as it likes.
type Report struct {
	Pool        string
	Interval    time.Duration
	CollectedAt time.Time

	ARC   ArcSnapshot
	L2ARC L2ArcSnapshot
	SLOG  SlogSnapshot
}
