// Package api exposes the probe's two operations over HTTP: a JSON stats
// snapshot, a one-shot analog read, a WebSocket stream of snapshots, and
// Prometheus metrics.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/voltlab/voltscope/internal/config"
	"github.com/voltlab/voltscope/internal/sensor"
)

// Server serves the stats API on a single listener.
type Server struct {
	cfg      config.APIConfig
	probe    *sensor.Probe
	log      *logrus.Logger
	srv      *http.Server
	upgrader websocket.Upgrader
}

// New creates a server around the probe. Nothing is bound until Start.
func New(cfg config.APIConfig, probe *sensor.Probe, log *logrus.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		probe: probe,
		log:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /read", s.handleRead)
	mux.HandleFunc("GET /ws", s.handleWS)
	if cfg.Metrics {
		mux.Handle("GET /metrics", promhttp.HandlerFor(
			newRegistry(probe), promhttp.HandlerOpts{}))
	}

	s.srv = &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins listening in the background. The returned channel reports a
// listener failure, if any.
func (s *Server) Start() <-chan error {
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.srv.Addr).Info("stats API listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("stats API: %w", err)
		}
		close(errc)
	}()
	return errc
}

// Shutdown stops the listener, waiting up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the route table, for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.probe.Stats())
}

// handleRead performs one analog read and returns the raw normalized sample.
func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	v := s.probe.Read()
	writeJSON(w, map[string]float64{"value": v})
}

// handleWS streams one stats snapshot per interval until the client goes
// away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Drain control frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(s.probe.Stats()); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
