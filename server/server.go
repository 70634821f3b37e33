// Package server exposes the DSL transpiler over HTTP: a JSON
// generation endpoint plus plain-text convenience routes, with request
// IDs, per-client rate limiting, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/errors"
	"github.com/tsforge/tsforge/logger"
)

// Server timeouts
const (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 30 * time.Second
	IdleTimeout  = 120 * time.Second
)

// Server serves DSL transpilation requests over HTTP
type Server struct {
	cfg    atomic.Pointer[config.Config]
	logger *zap.SugaredLogger

	httpServer *http.Server

	limiters   map[string]*clientLimiter
	limitersMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a server around the given configuration
func New(cfg *config.Config) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		logger:   logger.Logger,
		limiters: make(map[string]*clientLimiter),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.cfg.Store(cfg)
	return s
}

// conf returns the current configuration snapshot
func (s *Server) conf() *config.Config {
	return s.cfg.Load()
}

// UpdateConfig swaps in a freshly loaded configuration. Generator
// defaults apply to the next request; the listen port of a running
// server does not change.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.cfg.Store(cfg)
	s.logger.Infow("Server configuration updated", "config", cfg.String())
}

// Routes builds the HTTP handler with all middleware applied
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/dsl", s.HandleDSL)
	mux.HandleFunc("/t", s.HandleTypeText)
	mux.HandleFunc("/all", s.HandleAll)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/version", s.HandleVersion)

	var handler http.Handler = mux
	handler = s.withRateLimit(handler)
	handler = s.withCORS(handler)
	handler = s.withRequestID(handler)
	return handler
}

// Start listens on the configured port and blocks until the server
// stops. If the port is taken, the next free port is used.
func (s *Server) Start() error {
	port := s.conf().Server.Port
	if port == 0 {
		port = config.DefaultServerPort
	}

	actualPort, err := findAvailablePort(port)
	if err != nil {
		return errors.Wrap(err, "failed to find available port")
	}
	if actualPort != port {
		s.logger.Infow("Port in use, using alternative",
			"requested_port", port,
			"actual_port", actualPort,
		)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", actualPort),
		Handler:      s.Routes(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	s.startLimiterJanitor()

	s.logger.Infow("Server ready",
		"url", fmt.Sprintf("http://localhost:%d", actualPort),
		"port", actualPort,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "http server failed")
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() error {
	s.logger.Infow("Initiating server shutdown")

	grace := time.Duration(s.conf().Server.ShutdownSeconds) * time.Second
	if grace == 0 {
		grace = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = errors.Wrap(err, "http shutdown failed")
		}
	}

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infow("All goroutines stopped cleanly")
	case <-time.After(grace):
		s.logger.Warnw("Goroutine shutdown timed out, forcing exit",
			"timeout", grace,
		)
	}

	s.logger.Infow("Server shutdown complete")
	return shutdownErr
}

// findAvailablePort returns the first free port at or after the
// requested one, scanning a small window before giving up
func findAvailablePort(port int) (int, error) {
	for candidate := port; candidate < port+10; candidate++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", candidate))
		if err != nil {
			continue
		}
		ln.Close()
		return candidate, nil
	}
	return 0, errors.Newf("no available port in range %d-%d", port, port+9)
}
