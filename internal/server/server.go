package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/bootstrap"
	"github.com/obiwandem/varsity-backend/internal/config"
	"github.com/obiwandem/varsity-backend/internal/db"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// Server holds the state for the HTTP server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.PostgresDB
	http     *http.Server
}

// NewServer creates and initializes a new server instance
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &Server{
		config:   cfg,
		router:   bootstrap.SetupRouter(cfg, deps),
		database: database,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		logger.Info().Str("signal", sig.String()).Msg("Received OS signal, shutting down")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if s.database != nil {
		s.database.Close()
		logger.Info().Msg("Database connection pool closed")
	}

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", shutdownErr)
	}

	logger.Info().Msg("Server shutdown complete")
	return nil
}
