package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"netprobe/internal/models"
)

// TaskLister exposes the running probe tasks
type TaskLister interface {
	Tasks() []models.Task
}

// Server serves the local status endpoints
type Server struct {
	tasks    TaskLister
	gatherer prometheus.Gatherer
	logger   log.Logger
}

// New creates a new status server
func New(tasks TaskLister, gatherer prometheus.Gatherer, logger log.Logger) *Server {
	return &Server{
		tasks:    tasks,
		gatherer: gatherer,
		logger:   logger,
	}
}

// Handler returns the routes of the status server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/targets", s.handleTargets)
	return mux
}

// Serve serves on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		level.Info(s.logger).Log("msg", "status server starting", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
