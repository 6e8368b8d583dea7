package signal

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/voltlab/voltscope/internal/config"
)

// fakeClock advances a fixed step per reading so peak transitions are
// separated by well-defined intervals.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestAverageMatchesFullRecompute(t *testing.T) {
	h := NewHistory(8, 0.5)

	// An irregular sequence long enough to wrap the ring several times.
	for i := 0; i < 50; i++ {
		h.Push(math.Sin(float64(i)/3)*0.3 + 0.5)
	}

	want := stat.Mean(h.Values(), nil)
	got := h.Snapshot().Average
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("incremental average drifted, want: %v, got: %v", want, got)
	}
}

func TestWatermarksAreMonotonic(t *testing.T) {
	h := NewHistory(4, 0.5)

	h.Push(0.9)
	h.Push(0.1)
	s := h.Snapshot()
	if s.Max != 0.9 || s.Min != 0.1 {
		t.Fatalf("wrong extrema, want: max=0.9 min=0.1, got: max=%v min=%v", s.Max, s.Min)
	}

	// Evict both extremes from the ring; the watermarks must not move.
	for i := 0; i < 8; i++ {
		h.Push(0.5)
	}
	s = h.Snapshot()
	if s.Max != 0.9 {
		t.Errorf("max decreased after eviction, want: 0.9, got: %v", s.Max)
	}
	if s.Min != 0.1 {
		t.Errorf("min increased after eviction, want: 0.1, got: %v", s.Min)
	}
}

func TestAmplitudeFormula(t *testing.T) {
	h := NewHistory(4, 0.5)
	h.Push(0.9)
	h.Push(0.1)

	s := h.Snapshot()
	want := (s.Max - s.Min) / 2 * config.MaxVolt
	if s.Amplitude != want {
		t.Errorf("wrong amplitude, want: %v, got: %v", want, s.Amplitude)
	}
}

func TestConstantInputNeverReportsCycle(t *testing.T) {
	const capacity = 16
	h := NewHistory(capacity, 0.5, WithClock(newFakeClock(10*time.Millisecond).Now))

	for i := 0; i < capacity*3; i++ {
		h.Push(0.5)
	}

	s := h.Snapshot()
	if s.Wavelength != 0 {
		t.Errorf("spurious wavelength on constant input: %v", s.Wavelength)
	}
	if s.Frequency != 0 {
		t.Errorf("spurious frequency on constant input: %v", s.Frequency)
	}
}

func TestPeakTransitionsProduceWavelength(t *testing.T) {
	clock := newFakeClock(10 * time.Millisecond)
	h := NewHistory(4, 0.5, WithClock(clock.Now))

	// 0.9 enters the peak band, 0.5 leaves it (amplitude 0.2, tolerance
	// 0.01), the second 0.9 reenters and closes one wavelength.
	h.Push(0.9)
	h.Push(0.5)

	s := h.Snapshot()
	if s.Max != 0.9 || s.Min != 0.5 {
		t.Fatalf("wrong extrema after two pushes, want: max=0.9 min=0.5, got: max=%v min=%v", s.Max, s.Min)
	}
	if s.InPeak {
		t.Fatal("expected detector outside the peak band after 0.5")
	}
	if s.Wavelength != 0 {
		t.Fatalf("wavelength before a full transition: %v", s.Wavelength)
	}

	h.Push(0.9)

	s = h.Snapshot()
	if !s.InPeak {
		t.Error("expected detector inside the peak band after second 0.9")
	}
	if s.Wavelength <= 0 {
		t.Fatalf("expected positive wavelength, got: %v", s.Wavelength)
	}
	if want := 1 / s.Wavelength; math.Abs(s.Frequency-want) > 1e-9 {
		t.Errorf("frequency does not match wavelength, want: %v, got: %v", want, s.Frequency)
	}

	h.Push(0.5)
	s = h.Snapshot()
	if s.InPeak {
		t.Error("expected detector outside the band again after trailing 0.5")
	}
}

func TestSubMillisecondWavelengthIsDiscarded(t *testing.T) {
	clock := newFakeClock(10 * time.Microsecond)
	h := NewHistory(4, 0.5, WithClock(clock.Now))

	h.Push(0.9)
	h.Push(0.5)
	h.Push(0.9)

	s := h.Snapshot()
	if s.Wavelength != 0 || s.Frequency != 0 {
		t.Errorf("sub-minimum wavelength published, got: wl=%v hz=%v", s.Wavelength, s.Frequency)
	}
}

func TestSnapshotIsIdempotent(t *testing.T) {
	h := NewHistory(8, 0.5, WithClock(newFakeClock(10*time.Millisecond).Now))
	for i := 0; i < 20; i++ {
		h.Push(math.Sin(float64(i))*0.3 + 0.5)
	}

	a := h.Snapshot()
	b := h.Snapshot()
	if a != b {
		t.Errorf("snapshots differ without a push: %+v vs %+v", a, b)
	}
}

func TestFrequencyIsStaleBetweenUpdates(t *testing.T) {
	clock := newFakeClock(10 * time.Millisecond)
	h := NewHistory(4, 0.5, WithClock(clock.Now))

	h.Push(0.9)
	h.Push(0.5)
	h.Push(0.9)
	first := h.Snapshot()
	if first.Frequency == 0 {
		t.Fatal("expected a frequency after the first full transition")
	}

	// Samples that stay inside the band must not touch the last reading.
	h.Push(0.9)
	h.Push(0.895)
	if got := h.Snapshot().Frequency; got != first.Frequency {
		t.Errorf("frequency changed without a transition, want: %v, got: %v", first.Frequency, got)
	}
}

func TestReset(t *testing.T) {
	h := NewHistory(4, 0.5, WithClock(newFakeClock(10*time.Millisecond).Now))
	h.Push(0.9)
	h.Push(0.1)
	h.Push(0.9)

	h.Reset(0.5)
	s := h.Snapshot()
	if s.Max != 0.5 || s.Min != 0.5 || s.Average != 0.5 {
		t.Errorf("state survived reset: %+v", s)
	}
	if s.Wavelength != 0 || s.Frequency != 0 {
		t.Errorf("derived stats survived reset: %+v", s)
	}
}
