// Package signal implements the streaming signal-history tracker: a
// fixed-capacity ring of samples with running statistics (average, lifetime
// extrema, peak-derived frequency and wavelength) maintained in O(1) per
// sample.
package signal

// Ring is a fixed-capacity circular buffer of samples. It is created full
// of a fill value and stays full: every write overwrites the oldest entry.
type Ring struct {
	buf  []float64
	head int // next write index
}

// NewRing creates a ring of the given capacity with every slot set to fill.
func NewRing(capacity int, fill float64) *Ring {
	buf := make([]float64, capacity)
	for i := range buf {
		buf[i] = fill
	}
	return &Ring{buf: buf}
}

// Push overwrites the oldest sample with v and returns the evicted value.
func (r *Ring) Push(v float64) (evicted float64) {
	evicted = r.buf[r.head]
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	return evicted
}

// Values returns all samples in chronological order, oldest first.
func (r *Ring) Values() []float64 {
	out := make([]float64, len(r.buf))
	n := copy(out, r.buf[r.head:])
	copy(out[n:], r.buf[:r.head])
	return out
}

// Last returns the most recently written sample.
func (r *Ring) Last() float64 {
	idx := (r.head - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return len(r.buf)
}
