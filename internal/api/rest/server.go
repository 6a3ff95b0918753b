package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/cache"
	"github.com/eyoab/tarikoch/internal/entity"
	"github.com/eyoab/tarikoch/internal/handler"
	"github.com/eyoab/tarikoch/internal/metrics"
)

// Options bundles the collaborators the server wires into its handlers.
type Options struct {
	Posts      []entity.Post
	Registry   entity.Registry
	Cache      cache.Cache
	Generator  handler.FeedGenerator
	Newsletter handler.Subscriber

	Port       string
	PageSize   int
	FeedTTL    time.Duration
	RatePerMin int
	RateBurst  int
}

// Server represents the REST API server
type Server struct {
	mux     *http.ServeMux
	server  *http.Server
	logger  *slog.Logger
	limiter *RateLimiter
	port    string
}

// NewServer creates a new REST API server
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()
	logger := app.Logger()

	server := &Server{
		mux:     mux,
		logger:  logger,
		limiter: NewRateLimiter(rate.Limit(float64(opts.RatePerMin)/60.0), opts.RateBurst),
		port:    opts.Port,
		server: &http.Server{
			Addr:              ":" + opts.Port,
			Handler:           nil,               // Will be set in Run
			ReadHeaderTimeout: 10 * time.Second,  // Mitigate Slowloris
			ReadTimeout:       30 * time.Second,  // Time to read entire request (including body)
			WriteTimeout:      30 * time.Second,  // Time to write response
			IdleTimeout:       120 * time.Second, // Keep-alive timeout
		},
	}

	server.registerHandlers(opts)

	return server
}

// registerHandlers sets up all API routes
func (s *Server) registerHandlers(opts Options) {
	handler.NewPostsHandler(s.mux, opts.Posts, opts.Registry, opts.PageSize)
	handler.NewFeedsHandler(s.mux, opts.Cache, opts.Generator, opts.Posts, opts.FeedTTL)
	handler.NewNewsletterHandler(s.mux, opts.Newsletter, s.limiter.Middleware)

	s.mux.Handle("GET /metrics", metrics.Handler())
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// Run starts the server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	// Apply middleware to the router
	s.server.Handler = Logger(s.mux)

	// Set BaseContext to pass the parent context
	s.server.BaseContext = func(_ net.Listener) context.Context { return ctx }

	// Register shutdown handler
	s.server.RegisterOnShutdown(func() {
		s.logger.Info("Server is shutting down...")
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "port", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	s.limiter.Stop()

	// Create a timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited gracefully")

	return nil
}
