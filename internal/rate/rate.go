// Package rate turns cumulative counters into per-second rates.
package rate

import "time"

// sample is the last observation of one counter stream.
type sample struct {
	value uint64
	at    time.Time
	rate  float64
}

// Calculator keeps one baseline per stream. It is not safe for concurrent
// use; the collector feeds it from a single tick loop.
type Calculator struct {
	streams map[string]sample
}

// NewCalculator creates an empty calculator
func NewCalculator() *Calculator {
	return &Calculator{streams: make(map[string]sample)}
}

// Observe records value for stream and returns the rate since the previous
// observation.
//
// The first observation of a stream returns 0 and becomes the baseline.
// A counter that went backwards (reset or wrap) also becomes a new baseline
// and returns 0. Two observations without elapsed time return the previous
// rate. The result is never negative.
func (c *Calculator) Observe(stream string, value uint64, at time.Time) float64 {
	prev, ok := c.streams[stream]
	if !ok || value < prev.value {
		c.streams[stream] = sample{value: value, at: at}
		return 0
	}

	elapsed := at.Sub(prev.at).Seconds()
	if elapsed <= 0 {
		return prev.rate
	}

	r := float64(value-prev.value) / elapsed
	c.streams[stream] = sample{value: value, at: at, rate: r}
	return r
}

// Forget drops the baseline for stream.
func (c *Calculator) Forget(stream string) {
	delete(c.streams, stream)
}

// Len returns the number of tracked streams.
func (c *Calculator) Len() int {
	return len(c.streams)
}
