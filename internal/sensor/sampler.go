package sensor

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SampleMsg reports one completed analog read.
type SampleMsg struct {
	Value float64
	Tick  uint8
}

// Sampler drives the probe at a fixed rate from a background goroutine,
// notifying the Bubble Tea program after each read.
type Sampler struct {
	probe   *Probe
	program *tea.Program

	mu      sync.Mutex
	rate    float64 // samples per second
	paused  bool
	cancel  context.CancelFunc
	running bool
}

// NewSampler creates a sampler for the given probe.
func NewSampler(probe *Probe, rate float64) *Sampler {
	return &Sampler{probe: probe, rate: rate}
}

// Start begins sampling. Must be called before p.Run().
func (s *Sampler) Start(p *tea.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	s.program = p
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *Sampler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			paused := s.paused
			s.mu.Unlock()
			if paused {
				continue
			}

			v := s.probe.Read()
			if s.program != nil {
				s.program.Send(SampleMsg{Value: v, Tick: s.probe.Tick()})
			}

			// The rate may have changed since the last sample.
			ticker.Reset(s.interval())
		}
	}
}

func (s *Sampler) interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(float64(time.Second) / s.rate)
}

// Rate returns the current sample rate in samples per second.
func (s *Sampler) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// SetRate changes the sample rate, clamped to [min, max].
func (s *Sampler) SetRate(rate, min, max float64) {
	if rate < min {
		rate = min
	}
	if rate > max {
		rate = max
	}
	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()
}

// Pause suspends reads without stopping the goroutine. Snapshot readers
// keep seeing the last fully-applied state.
func (s *Sampler) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume restarts reads after a Pause.
func (s *Sampler) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Paused reports whether sampling is suspended.
func (s *Sampler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Stop halts the sampler.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}
