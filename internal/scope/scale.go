// Package scope renders the sample history as a terminal oscilloscope
// trace: a cell grid with a graticule, a voltage axis, and a phosphor-style
// waveform.
package scope

import "gonum.org/v1/gonum/floats"

// scale maps normalized sample values onto grid rows.
type scale struct {
	lo, hi float64
}

// autoscale fits the vertical axis to the visible samples with a small
// margin so the trace never touches the frame.
func autoscale(samples []float64) scale {
	if len(samples) == 0 {
		return scale{lo: 0, hi: 1}
	}

	lo := floats.Min(samples)
	hi := floats.Max(samples)

	span := hi - lo
	if span < 0.05 {
		// Flat signal: keep a fixed window around it instead of zooming
		// into float noise.
		mid := (hi + lo) / 2
		return scale{lo: mid - 0.1, hi: mid + 0.1}
	}

	margin := span * 0.1
	return scale{lo: lo - margin, hi: hi + margin}
}

// row maps a sample value to a grid row. Row 0 is the top of the grid.
func (s scale) row(v float64, height int) int {
	t := (v - s.lo) / (s.hi - s.lo)
	r := int(float64(height-1) * (1 - t))
	if r < 0 {
		r = 0
	}
	if r >= height {
		r = height - 1
	}
	return r
}

// value returns the sample value at the center of a grid row.
func (s scale) value(row, height int) float64 {
	t := 1 - float64(row)/float64(height-1)
	return s.lo + (s.hi-s.lo)*t
}
