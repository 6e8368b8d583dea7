package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Signal scaling. Samples are normalized to [0, 1], where 0 is 0V
	// and 1 is MaxVolt volts.
	MaxVolt = 5.0

	// History tracker
	HistorySize   = 1000 // Samples kept in the ring
	DefaultValue  = 0.5  // Ring fill value at startup (mid-scale)
	PeakTolerance = 0.05 // Peak band: 5% of half the lifetime amplitude

	// Wavelengths shorter than this are treated as no signal; two peak
	// transitions within one tick would otherwise publish +Inf Hz.
	MinWavelength = time.Millisecond

	// Sampling
	DefaultSampleRate = 50.0 // Samples per second
	MinSampleRate     = 1.0
	MaxSampleRate     = 1000.0

	// Display
	TargetFPS = 30 // UI frames per second

	// App
	AppName    = "VOLTSCOPE"
	AppVersion = "1.0"
)

// Config is the runtime configuration, loadable from a YAML file.
// Zero values fall back to the compiled defaults.
type Config struct {
	Sensor  SensorConfig  `yaml:"sensor"`
	Scope   ScopeConfig   `yaml:"scope"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// SensorConfig controls the simulated sensor and the history tracker.
type SensorConfig struct {
	SampleRate   float64 `yaml:"sample_rate"`   // Samples per second
	Capacity     int     `yaml:"capacity"`      // Ring size
	DefaultValue float64 `yaml:"default_value"` // Ring fill value
}

// ScopeConfig controls the terminal display.
type ScopeConfig struct {
	FPS int `yaml:"fps"`
}

// APIConfig controls the optional HTTP stats server.
type APIConfig struct {
	Listen  string `yaml:"listen"`  // e.g. "127.0.0.1:8730"; empty disables the server
	Metrics bool   `yaml:"metrics"` // Expose /metrics
}

// LoggingConfig controls the file logger. The TUI owns stdout.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a Config populated with the compiled defaults.
func Default() *Config {
	return &Config{
		Sensor: SensorConfig{
			SampleRate:   DefaultSampleRate,
			Capacity:     HistorySize,
			DefaultValue: DefaultValue,
		},
		Scope: ScopeConfig{
			FPS: TargetFPS,
		},
		API: APIConfig{
			Metrics: true,
		},
		Logging: LoggingConfig{
			File:  "voltscope.log",
			Level: "info",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Sensor.SampleRate == 0 {
		c.Sensor.SampleRate = d.Sensor.SampleRate
	}
	if c.Sensor.Capacity == 0 {
		c.Sensor.Capacity = d.Sensor.Capacity
	}
	if c.Sensor.DefaultValue == 0 {
		c.Sensor.DefaultValue = d.Sensor.DefaultValue
	}
	if c.Scope.FPS == 0 {
		c.Scope.FPS = d.Scope.FPS
	}
	if c.Logging.File == "" {
		c.Logging.File = d.Logging.File
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
}

// Validate rejects values the tracker or sampler cannot run with.
func (c *Config) Validate() error {
	if c.Sensor.Capacity < 1 {
		return fmt.Errorf("sensor.capacity must be positive, got %d", c.Sensor.Capacity)
	}
	if c.Sensor.SampleRate < MinSampleRate || c.Sensor.SampleRate > MaxSampleRate {
		return fmt.Errorf("sensor.sample_rate must be in [%g, %g], got %g",
			MinSampleRate, MaxSampleRate, c.Sensor.SampleRate)
	}
	if c.Sensor.DefaultValue < 0 || c.Sensor.DefaultValue > 1 {
		return fmt.Errorf("sensor.default_value must be in [0, 1], got %g", c.Sensor.DefaultValue)
	}
	if c.Scope.FPS < 1 || c.Scope.FPS > 120 {
		return fmt.Errorf("scope.fps must be in [1, 120], got %d", c.Scope.FPS)
	}
	return nil
}
