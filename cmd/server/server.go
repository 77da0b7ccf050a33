package main

import (
	"log/slog"
	"time"

	"github.com/JaimeStill/country-app/internal/config"
	"github.com/JaimeStill/country-app/internal/lifecycle"
	"github.com/JaimeStill/country-app/internal/server"
	"github.com/JaimeStill/country-app/pkg/logging"
	"github.com/JaimeStill/country-app/pkg/middleware"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	lifecycle *lifecycle.Coordinator
	logger    *slog.Logger
	http      server.System
}

// NewServer creates and initializes the service with all subsystems.
// Route table configuration errors surface here and stop startup.
func NewServer(cfg *config.Config) (*Server, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, nil)

	modules, err := NewModules(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := middleware.Chain(
		modules.Mount(buildRouter(lc)),
		middleware.Logger(logger),
	)

	logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		lifecycle: lc,
		logger:    logger,
		http:      server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, logger),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.logger.Info("starting service")

	if err := s.http.Start(s.lifecycle); err != nil {
		return err
	}

	go func() {
		s.lifecycle.WaitForStartup()
		s.logger.Info("all subsystems ready", "addr", s.http.Addr())
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.logger.Info("initiating shutdown")
	return s.lifecycle.Shutdown(timeout)
}
