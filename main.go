package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voltlab/voltscope/internal/api"
	"github.com/voltlab/voltscope/internal/app"
	"github.com/voltlab/voltscope/internal/config"
	"github.com/voltlab/voltscope/internal/sensor"
	"github.com/voltlab/voltscope/internal/signal"
)

var (
	flagConfig   string
	flagRate     float64
	flagCapacity int
	flagListen   string
	flagLogFile  string
	flagFPS      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voltscope",
		Short: "voltscope - Terminal oscilloscope for a simulated analog voltage sensor",
		Long: `voltscope samples a simulated analog voltage sensor and derives running
statistics (amplitude, frequency, wavelength) from the signal history,
drawing the waveform and statistics in the terminal.

With --listen, the same statistics are served over HTTP: /stats and /read
mirror the two sensor operations, /ws streams snapshots, and /metrics
exposes Prometheus gauges.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.Flags().Float64Var(&flagRate, "rate", config.DefaultSampleRate, "Sample rate in samples per second")
	rootCmd.Flags().IntVar(&flagCapacity, "capacity", config.HistorySize, "History ring capacity in samples")
	rootCmd.Flags().StringVar(&flagListen, "listen", "", "Stats API listen address (e.g. 127.0.0.1:8730); empty disables")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.TargetFPS, "Display frames per second")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, logFile, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logFile.Close()

	history := signal.NewHistory(cfg.Sensor.Capacity, cfg.Sensor.DefaultValue)
	probe := sensor.NewProbe(sensor.NewSine(), history)

	var server *api.Server
	if cfg.API.Listen != "" {
		server = api.New(cfg.API, probe, log)
		errc := server.Start()
		go func() {
			for err := range errc {
				log.WithError(err).Error("stats API stopped")
			}
		}()
	}

	model := app.New(cfg, probe)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(cfg.Scope.FPS),
	)

	if err := model.StartSampler(p); err != nil {
		return fmt.Errorf("starting sampler: %w", err)
	}

	log.WithFields(logrus.Fields{
		"rate":     cfg.Sensor.SampleRate,
		"capacity": cfg.Sensor.Capacity,
	}).Info("voltscope started")

	_, runErr := p.Run()
	model.StopSampler()

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("stats API shutdown")
		}
	}

	return runErr
}

// loadConfig builds the effective config: compiled defaults, then the YAML
// file, then any explicitly-set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rate") {
		cfg.Sensor.SampleRate = flagRate
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Sensor.Capacity = flagCapacity
	}
	if cmd.Flags().Changed("listen") {
		cfg.API.Listen = flagListen
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
	if cmd.Flags().Changed("fps") {
		cfg.Scope.FPS = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger opens the file logger. The TUI owns stdout, so logs only ever
// go to the file.
func newLogger(cfg config.LoggingConfig) (*logrus.Logger, *os.File, error) {
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	log := logrus.New()
	log.SetOutput(f)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log, f, nil
}
