package rate

import (
	"math/rand"
	"testing"
	"time"
)

var t0 = time.Date(2025, 9, 14, 16, 0, 0, 0, time.UTC)

func TestFirstObservationIsZero(t *testing.T) {
	c := NewCalculator()
	if got := c.Observe("ops", 1000, t0); got != 0 {
		t.Fatalf("first Observe = %v, want 0", got)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		prev    uint64
		cur     uint64
		elapsed time.Duration
		want    float64
	}{
		{"one second", 100, 150, time.Second, 50},
		{"two seconds", 100, 300, 2 * time.Second, 100},
		{"half second", 0, 100, 500 * time.Millisecond, 200},
		{"unchanged", 100, 100, time.Second, 0},
		{"large", 0, 1 << 40, 4 * time.Second, 1 << 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator()
			c.Observe("s", tt.prev, t0)
			got := c.Observe("s", tt.cur, t0.Add(tt.elapsed))
			if got != tt.want {
				t.Errorf("rate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCounterResetStartsNewBaseline(t *testing.T) {
	c := NewCalculator()
	c.Observe("s", 200, t0)

	if got := c.Observe("s", 100, t0.Add(time.Second)); got != 0 {
		t.Fatalf("rate after reset = %v, want 0", got)
	}

	// the reset value is the new baseline
	if got := c.Observe("s", 160, t0.Add(2*time.Second)); got != 60 {
		t.Fatalf("rate after new baseline = %v, want 60", got)
	}
}

func TestZeroElapsedReusesPreviousRate(t *testing.T) {
	c := NewCalculator()
	c.Observe("s", 0, t0)
	c.Observe("s", 40, t0.Add(time.Second))

	if got := c.Observe("s", 90, t0.Add(time.Second)); got != 40 {
		t.Fatalf("rate with zero elapsed = %v, want 40", got)
	}

	// baseline was not moved by the zero-elapsed sample
	if got := c.Observe("s", 90, t0.Add(2*time.Second)); got != 50 {
		t.Fatalf("rate = %v, want 50", got)
	}
}

func TestZeroElapsedOnSecondSample(t *testing.T) {
	c := NewCalculator()
	c.Observe("s", 100, t0)
	if got := c.Observe("s", 200, t0); got != 0 {
		t.Fatalf("rate = %v, want 0", got)
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	c := NewCalculator()
	c.Observe("a", 100, t0)
	c.Observe("b", 200, t0)

	if got := c.Observe("a", 150, t0.Add(time.Second)); got != 50 {
		t.Errorf("a = %v, want 50", got)
	}
	if got := c.Observe("b", 500, t0.Add(time.Second)); got != 300 {
		t.Errorf("b = %v, want 300", got)
	}
}

func TestForget(t *testing.T) {
	c := NewCalculator()
	c.Observe("s", 100, t0)
	c.Forget("s")

	if got := c.Observe("s", 500, t0.Add(time.Second)); got != 0 {
		t.Fatalf("rate after Forget = %v, want 0", got)
	}
}

func TestRateNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCalculator()
	at := t0

	for i := 0; i < 10000; i++ {
		at = at.Add(time.Duration(rng.Intn(3)) * time.Second)
		if got := c.Observe("s", uint64(rng.Intn(1000)), at); got < 0 {
			t.Fatalf("iteration %d: negative rate %v", i, got)
		}
	}
}
