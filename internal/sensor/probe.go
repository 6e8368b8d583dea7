package sensor

import (
	"github.com/voltlab/voltscope/internal/signal"
)

// Probe wires a tick counter, a sample source, and the history tracker into
// the two operations callers see: Read (advance the tick, sample, record,
// return the raw value) and Stats (read-only snapshot). The ticker is
// locked before the tracker observes the resulting sample, and readers may
// call Stats at any rate independent of Read.
type Probe struct {
	ticker  *Ticker
	source  Source
	history *signal.History
}

// NewProbe creates a probe over the given source and tracker.
func NewProbe(source Source, history *signal.History) *Probe {
	return &Probe{
		ticker:  NewTicker(),
		source:  source,
		history: history,
	}
}

// Read performs one analog read: it advances the tick counter, generates a
// sample, pushes it into the history tracker, and returns the raw sample.
func (p *Probe) Read() float64 {
	v := p.source.Sample(p.ticker.Tick())
	p.history.Push(v)
	return v
}

// Stats returns the current derived statistics.
func (p *Probe) Stats() signal.Stats {
	return p.history.Snapshot()
}

// Waveform returns the recorded history in chronological order.
func (p *Probe) Waveform() []float64 {
	return p.history.Values()
}

// Tick returns the current tick counter value.
func (p *Probe) Tick() uint8 {
	return p.ticker.Value()
}

// Reset clears the tracker back to the given fill value. The tick counter
// keeps running.
func (p *Probe) Reset(defaultValue float64) {
	p.history.Reset(defaultValue)
}
