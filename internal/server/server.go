package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/01moynul/instituto-dashboard/internal/config"
)

const shutdownTimeout = 10 * time.Second

// Server holds the state for the HTTP server.
type Server struct {
	config   config.ServerConfig
	handler  http.Handler
	provider io.Closer
	logger   zerolog.Logger
	http     *http.Server
}

// New wires the HTTP server around handler. provider is closed on shutdown.
func New(cfg config.ServerConfig, handler http.Handler, provider io.Closer, logger zerolog.Logger) *Server {
	s := &Server{
		config:   cfg,
		handler:  handler,
		provider: provider,
		logger:   logger,
	}
	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Run starts the HTTP server and blocks until ctx is done, SIGINT/SIGTERM
// arrives or the listener fails. It always shuts down before returning.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("mode", s.config.Mode).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	if err := s.Shutdown(context.Background()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// Shutdown gracefully stops the server and closes the database provider.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error

	s.logger.Info().Msg("Shutting down HTTP server...")
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
		errs = append(errs, err)
	}

	if s.provider != nil {
		if err := s.provider.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Database provider close error")
			errs = append(errs, err)
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return errors.Join(errs...)
}
