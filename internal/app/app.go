package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltlab/voltscope/internal/config"
	"github.com/voltlab/voltscope/internal/scope"
	"github.com/voltlab/voltscope/internal/sensor"
	"github.com/voltlab/voltscope/internal/signal"
	"github.com/voltlab/voltscope/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	probe   *sensor.Probe
	sampler *sensor.Sampler
}

// Model is the root Bubble Tea model for voltscope.
type Model struct {
	width  int
	height int

	cfg    *config.Config
	shared *shared

	// Cached snapshot refreshed once per frame; pushes and reads stay
	// decoupled, a frame simply shows the latest fully-applied state.
	stats    signal.Stats
	waveform []float64
	tick     uint8
}

// New creates a new Model around an already-constructed probe.
func New(cfg *config.Config, probe *sensor.Probe) Model {
	return Model{
		cfg: cfg,
		shared: &shared{
			probe:   probe,
			sampler: sensor.NewSampler(probe, cfg.Sensor.SampleRate),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.Scope.FPS)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FrameMsg:
		m.stats = m.shared.probe.Stats()
		m.waveform = m.shared.probe.Waveform()
		m.tick = m.shared.probe.Tick()
		return m, frameCmd(m.cfg.Scope.FPS)

	case sensor.SampleMsg:
		m.tick = msg.Tick
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.sampler.Stop()
		return m, tea.Quit

	case "p", "P":
		if m.shared.sampler.Paused() {
			m.shared.sampler.Resume()
		} else {
			m.shared.sampler.Pause()
		}

	case "r", "R":
		m.shared.probe.Reset(m.cfg.Sensor.DefaultValue)

	case "+", "=":
		m.shared.sampler.SetRate(m.shared.sampler.Rate()*2,
			config.MinSampleRate, config.MaxSampleRate)

	case "-", "_":
		m.shared.sampler.SetRate(m.shared.sampler.Rate()/2,
			config.MinSampleRate, config.MaxSampleRate)
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing voltscope..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	scopeW := m.width * 3 / 4
	if scopeW < 30 {
		scopeW = 30
	}
	statsW := m.width - scopeW
	if statsW < 22 {
		statsW = 22
		scopeW = m.width - statsW
	}

	running := !m.shared.sampler.Paused()
	menuBar := ui.RenderMenuBar(m.width, running)

	innerW := scopeW - 4
	innerH := bodyH - 5 // border + title line
	if innerW < 20 {
		innerW = 20
	}
	if innerH < 5 {
		innerH = 5
	}
	trace := scope.Render(innerW, innerH, m.waveform)
	scopePanel := ui.RenderScopePanel(scopeW, bodyH, trace)

	statsPanel := ui.RenderStatsPanel(m.stats, statsW, bodyH)

	statusBar := ui.RenderStatusBar(m.width, running,
		m.shared.sampler.Rate(), m.tick, m.cfg.API.Listen)

	return ui.ComposeLayout(menuBar, scopePanel, statsPanel, statusBar)
}

// StartSampler begins background sampling. Must be called before p.Run().
func (m *Model) StartSampler(p *tea.Program) error {
	return m.shared.sampler.Start(p)
}

// StopSampler halts background sampling.
func (m *Model) StopSampler() {
	m.shared.sampler.Stop()
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
