package signal

import (
	"sync"
	"time"

	"github.com/voltlab/voltscope/internal/config"
)

// Stats is a point-in-time snapshot of the derived signal statistics.
// Amplitude is in volts; Frequency in Hz; Wavelength in seconds.
// Average, Min, Max and Last are normalized [0, 1] sample values.
type Stats struct {
	Amplitude  float64 `json:"amplitude"`
	Frequency  float64 `json:"frequency"`
	Wavelength float64 `json:"wavelength"`
	Average    float64 `json:"average"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Last       float64 `json:"last"`
	InPeak     bool    `json:"in_peak"`
}

// History tracks a stream of samples and derives running statistics, one
// sample at a time. All updates are O(1): the average is maintained
// incrementally as samples are written and evicted, and the extrema are
// lifetime watermarks that never move backward, even after the sample that
// set them leaves the ring.
//
// A single mutex guards the whole state so a reader can never observe a
// half-applied push. The critical section is a handful of float operations
// with no allocation or I/O.
type History struct {
	mu sync.Mutex

	ring    *Ring
	average float64
	max     float64 // lifetime watermark, non-decreasing
	min     float64 // lifetime watermark, non-increasing

	// Peak detector. A sample within the tolerance band below max is
	// "inside a peak". peakExitAt holds the moment the signal last left
	// the band; a later reentry closes one wavelength.
	inPeak     bool
	peakExitAt time.Time
	wavelength time.Duration // 0 until a full exit->reentry has been seen
	frequency  float64       // Hz, stale between wavelength updates

	now func() time.Time
}

// Option configures a History.
type Option func(*History)

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(h *History) { h.now = now }
}

// NewHistory creates a tracker whose ring holds capacity samples, all
// initialized to defaultValue. Average and both watermarks start at
// defaultValue; the peak detector starts outside the band with no exit
// pending, so the first wavelength is measured from the first observed
// inside->outside transition.
func NewHistory(capacity int, defaultValue float64, opts ...Option) *History {
	h := &History{
		ring:    NewRing(capacity, defaultValue),
		average: defaultValue,
		max:     defaultValue,
		min:     defaultValue,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push records one sample. It cannot fail for finite input.
func (h *History) Push(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old := h.ring.Push(v)
	h.average += (v - old) / float64(h.ring.Cap())

	if v > h.max {
		h.max = v
	}
	if v < h.min {
		h.min = v
	}

	tolerance := (h.max - h.min) / 2 * config.PeakTolerance

	if h.max-v > tolerance {
		// Outside the peak band. Record the exit moment once; repeat
		// outside samples keep the original exit time.
		if h.inPeak {
			h.inPeak = false
			h.peakExitAt = h.now()
		}
		return
	}

	// Inside the band. If a prior exit is pending, the reentry closes a
	// wavelength: the time from leaving the band, through the trough, back
	// up into it.
	if !h.inPeak {
		h.inPeak = true
		if !h.peakExitAt.IsZero() {
			wl := h.now().Sub(h.peakExitAt)
			h.peakExitAt = time.Time{}
			if wl >= config.MinWavelength {
				h.wavelength = wl
				h.frequency = 1 / wl.Seconds()
			}
		}
	}
}

// Snapshot returns the current statistics without mutating state. Calling
// it twice with no intervening Push yields identical results.
func (h *History) Snapshot() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return Stats{
		Amplitude:  (h.max - h.min) / 2 * config.MaxVolt,
		Frequency:  h.frequency,
		Wavelength: h.wavelength.Seconds(),
		Average:    h.average,
		Min:        h.min,
		Max:        h.max,
		Last:       h.ring.Last(),
		InPeak:     h.inPeak,
	}
}

// Values returns the ring contents in chronological order, oldest first.
func (h *History) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ring.Values()
}

// Reset discards all state and refills the ring with defaultValue.
func (h *History) Reset(defaultValue float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ring = NewRing(h.ring.Cap(), defaultValue)
	h.average = defaultValue
	h.max = defaultValue
	h.min = defaultValue
	h.inPeak = false
	h.peakExitAt = time.Time{}
	h.wavelength = 0
	h.frequency = 0
}
