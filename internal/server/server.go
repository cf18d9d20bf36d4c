package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Sigi3012/Midnight/internal/config"
	"github.com/Sigi3012/Midnight/internal/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer returns the HTTP server of the interaction endpoint. It is run
// as one of the bot's workers.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

func (s *httpServer) Name() string {
	return "http"
}

// Run serves until ctx is done and then shuts the server down, letting
// in-flight requests finish.
func (s *httpServer) Run(ctx context.Context) error {
	served := make(chan error, 1)
	go func() {
		defer close(served)

		s.logger.Info().Str("address", s.server.Addr).Msg("launching HTTP server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			served <- err
		}
	}()

	select {
	case err := <-served:
		if err != nil {
			return fmt.Errorf("%w on %s: %w", errServing, s.server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	s.logger.Info().Msg("server shutdown gracefully")

	return nil
}
