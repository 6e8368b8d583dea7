package sensor

import (
	"testing"

	"github.com/voltlab/voltscope/internal/signal"
)

func TestSineStaysInRange(t *testing.T) {
	src := NewSine()
	for tick := 0; tick < 256; tick++ {
		v := src.Sample(uint8(tick))
		if v < 0.2 || v > 0.8 {
			t.Errorf("sample out of range at tick %d: %v", tick, v)
		}
	}
}

func TestSineIsDeterministic(t *testing.T) {
	src := NewSine()
	for tick := 0; tick < 256; tick++ {
		a := src.Sample(uint8(tick))
		b := src.Sample(uint8(tick))
		if a != b {
			t.Fatalf("non-deterministic sample at tick %d: %v vs %v", tick, a, b)
		}
	}
}

func TestTickerWraps(t *testing.T) {
	tk := NewTicker()
	for i := 0; i < 255; i++ {
		tk.Tick()
	}
	if tk.Value() != 255 {
		t.Fatalf("wrong counter, want: 255, got: %d", tk.Value())
	}
	if got := tk.Tick(); got != 0 {
		t.Errorf("counter did not wrap, want: 0, got: %d", got)
	}
}

// fixedSource returns a canned sequence regardless of tick.
type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Sample(uint8) float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestProbeReadRecordsAndReturns(t *testing.T) {
	src := &fixedSource{values: []float64{0.7, 0.3}}
	p := NewProbe(src, signal.NewHistory(4, 0.5))

	if got := p.Read(); got != 0.7 {
		t.Fatalf("wrong raw sample, want: 0.7, got: %v", got)
	}
	if got := p.Stats().Last; got != 0.7 {
		t.Errorf("sample not recorded, want: 0.7, got: %v", got)
	}
	if got := p.Tick(); got != 1 {
		t.Errorf("tick not advanced, want: 1, got: %d", got)
	}

	p.Read()
	s := p.Stats()
	if s.Max != 0.7 || s.Min != 0.3 {
		t.Errorf("wrong extrema, want: max=0.7 min=0.3, got: max=%v min=%v", s.Max, s.Min)
	}
}

func TestProbeStatsIsPureRead(t *testing.T) {
	p := NewProbe(NewSine(), signal.NewHistory(8, 0.5))
	p.Read()

	a := p.Stats()
	b := p.Stats()
	if a != b {
		t.Errorf("stats mutated state: %+v vs %+v", a, b)
	}
	if got := p.Tick(); got != 1 {
		t.Errorf("stats advanced the tick counter, want: 1, got: %d", got)
	}
}
