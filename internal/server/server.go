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

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	appRepos "github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/bootstrap"
	"github.com/yigit/learnify/internal/config"
	"github.com/yigit/learnify/internal/db"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	handler  http.Handler
	database *db.PostgresDB
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer loads configuration, connects and migrates the database, seeds the
// default admin and builds the HTTP handler.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if err := bootstrap.RunMigrations(ctx, cfg, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	deps := bootstrap.BuildDependencies(cfg, appRepos.NewRepositories(database.Pool), lgr)
	if err := bootstrap.SeedAdmin(ctx, cfg, deps); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	router := bootstrap.SetupRouter(cfg, deps)

	return &Server{
		config:   cfg,
		handler:  NewHandler(cfg, router),
		database: database,
		logger:   lgr,
	}, nil
}

// NewHandler wraps h with the CORS policy for the configured frontend origins
func NewHandler(cfg *config.Config, h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})
	return c.Handler(h)
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.database.Close()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if s.database != nil {
		s.database.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	return shutdownErr
}
