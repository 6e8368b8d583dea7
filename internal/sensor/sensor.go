// Package sensor simulates a single analog voltage sensor. Samples are
// normalized to [0, 1]; the synthetic waveform is constrained to [0.2, 0.8].
package sensor

import (
	"math"
	"sync"
)

// Ticker is a monotonic tick counter driving the sample source. It wraps
// at 256 the way an 8-bit hardware counter would. It has its own lock,
// independent of the history tracker's.
type Ticker struct {
	mu sync.Mutex
	n  uint8
}

// NewTicker creates a counter starting at zero.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Tick advances the counter and returns the new value.
func (t *Ticker) Tick() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n++
	return t.n
}

// Value returns the current counter value without advancing it.
func (t *Ticker) Value() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// Source produces one normalized sample per tick.
type Source interface {
	Sample(tick uint8) float64
}

// Sine is the deterministic sinusoidal source: a full-scale sine with
// period 14*pi ticks, scaled into [Low, High].
type Sine struct {
	Low  float64
	High float64
}

// NewSine creates the default source covering [0.2, 0.8].
func NewSine() Sine {
	return Sine{Low: 0.2, High: 0.8}
}

// Sample returns the waveform value for the given tick.
func (s Sine) Sample(tick uint8) float64 {
	t := (math.Sin(float64(tick)/7) + 1) / 2
	return lerp(s.Low, s.High, t)
}

// lerp maps t in [0, 1] onto [lo, hi].
func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
