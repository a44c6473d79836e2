// Package api exposes the linter over HTTP for editor integrations and
// CI services.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"academiclint/internal/config"
	"academiclint/internal/domains"
)

// Server is the HTTP API server.
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	addr    string
	logger  *slog.Logger
	baseCfg config.Config
	domains *domains.Manager
}

// NewServer creates the API server with its routes registered.
func NewServer(addr string, baseCfg config.Config, logger *slog.Logger) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger,
		baseCfg: baseCfg,
		domains: domains.NewManager(),
		router:  http.NewServeMux(),
	}

	s.registerRoutes()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.applyMiddleware(s.router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.HandleFunc("/ready", s.handleReady)
	s.router.HandleFunc("/version", s.handleVersion)
	s.router.HandleFunc("/domains", s.handleDomains)
	s.router.HandleFunc("/check", s.handleCheck)
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Handler returns the configured handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.applyMiddleware(s.router)
}

// applyMiddleware wraps the router with request logging and panic
// recovery.
func (s *Server) applyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "path", r.URL.Path, "panic", fmt.Sprint(rec))
				http.Error(w, `{"code":"INTERNAL_ERROR","message":"internal server error"}`,
					http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"durationMs", time.Since(start).Milliseconds())
	})
}
