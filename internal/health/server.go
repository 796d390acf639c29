// Package health runs the liveness HTTP sidecar. Hosting keep-alive
// probes hit it on a fixed schedule, so the routes answer instantly and
// never touch bot state.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m3rciful/topupbot/core/logger"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the liveness HTTP listener.
type Server struct {
	srv *http.Server
}

// New builds the sidecar with the three plaintext probe routes plus
// the Prometheus exporter.
func New(port int) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("🤖 Telegram Bot is running!"))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("✅ OK"))
	})
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("🏓 Pong!"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	logger.HTTP.Info("liveness endpoint up",
		slog.String("event", "http.listen"),
		slog.String("addr", s.srv.Addr),
	)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.HTTP.Error("liveness endpoint failed",
				slog.String("event", "http.serve"),
				slog.String("err", err.Error()),
			)
		}
	}()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
