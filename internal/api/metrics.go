package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/voltlab/voltscope/internal/sensor"
)

// newRegistry builds a Prometheus registry whose gauges read the tracker
// at scrape time, so a scrape is just one snapshot under the mutex.
func newRegistry(probe *sensor.Probe) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "voltscope_amplitude_volts",
		Help: "Signal amplitude derived from lifetime extrema.",
	}, func() float64 { return probe.Stats().Amplitude })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "voltscope_frequency_hz",
		Help: "Last derived signal frequency.",
	}, func() float64 { return probe.Stats().Frequency })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "voltscope_wavelength_seconds",
		Help: "Last derived signal wavelength.",
	}, func() float64 { return probe.Stats().Wavelength })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "voltscope_average",
		Help: "Running mean of the sample ring, normalized to [0, 1].",
	}, func() float64 { return probe.Stats().Average })

	return reg
}
