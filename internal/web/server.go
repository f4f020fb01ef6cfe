package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const shutdownTimeout = 5 * time.Second

var _ types.Server = &Server{}

// Server serves the calculator widget page, its JSON API and WebSocket channel
type Server struct {
	config     types.Config
	sessions   *session.Manager
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// NewServer creates a new widget server
func NewServer(config types.Config, sessions *session.Manager) *Server {
	return &Server{
		config:   config,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler builds the HTTP router
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(requestLogger)
	router.Use(securityHeaders)

	router.Get("/", s.handleIndex)
	router.Get("/healthz", s.handleHealthz)
	router.Get("/metrics", metrics.Handler().ServeHTTP)
	router.Get("/ws", s.handleWebSocket)

	router.Route("/api", func(r chi.Router) {
		r.Get("/buttons", s.handleListButtons)
		r.Post("/evaluate", s.handleEvaluate)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{sessionID}", s.handleGetSession)
			r.Delete("/{sessionID}", s.handleDeleteSession)
			r.Post("/{sessionID}/press", s.handlePress)
		})
	})

	return router
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	if s.config.SessionIdleTimeout > 0 {
		go s.sweepLoop(ctx, s.config.SessionIdleTimeout)
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Serving calculator widget", "addr", s.config.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	slog.Info("Calculator widget server stopped")
	return nil
}

// sweepLoop evicts idle sessions every half idle period. maxIdle must be positive.
func (s *Server) sweepLoop(ctx context.Context, maxIdle time.Duration) {
	interval := maxIdle / 2
	if interval <= 0 {
		interval = maxIdle
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sessions.Sweep(maxIdle)
			metrics.SetActiveSessions(s.sessions.Len())
		}
	}
}
