// Package server exposes bignumctl's long-running computations over HTTP:
// a Prometheus /metrics endpoint today, with room for request-driven
// compute endpoints (pow, modpow, gcd) behind the same middleware chain.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/bignum/internal/logging"
)

// Server wires together the HTTP mux, Prometheus metrics, security policy,
// and structured logging used by the -serve mode of the CLI.
type Server struct {
	metrics    *Metrics
	logger     logging.Logger
	security   SecurityConfig
	httpServer *http.Server
}

// NewServer builds a Server listening on addr, with the given logger used
// for request-level diagnostics. A nil logger is valid; log calls are
// skipped.
func NewServer(addr string, logger logging.Logger) *Server {
	s := &Server{
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe starts the server and blocks until it stops or ctx is
// canceled, in which case it shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks an in-flight gauge and a completed-request
// counter around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.observe(r.URL.Path, strconv.Itoa(rec.status))
	}
}

// statusRecorder captures the status code written by a downstream handler
// so metricsMiddleware can label requestsTotal by outcome.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// handleMetrics serves the Prometheus exposition format for GET requests
// and rejects everything else.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		if s.logger != nil {
			s.logger.Debug("rejected non-GET request to /metrics", logging.String("method", r.Method))
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}
