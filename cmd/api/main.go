package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/learnify/internal/bootstrap"
	"github.com/yigit/learnify/internal/pkg/logger"
	"github.com/yigit/learnify/internal/server"
)

// @title Learnify API
// @version 1.0
// @description REST API for the Learnify learning management platform

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, as "Bearer <token>"

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
