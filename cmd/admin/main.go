package main

import (
	"context"
	"errors"
	"os"

	appRepos "github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/bootstrap"
	"github.com/yigit/learnify/internal/pkg/logger"
)

func main() {
	configPath := bootstrap.DefaultConfigPath
	if p, ok := os.LookupEnv("LEARNIFY_CONFIG"); ok {
		configPath = p
	}

	ctx := context.Background()
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		os.Exit(1)
	}

	database, err := bootstrap.ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, appRepos.NewRepositories(database.Pool), lgr)

	cli := commandLine{
		migrate: func(ctx context.Context) error {
			return bootstrap.RunMigrations(ctx, cfg, database, lgr)
		},
		authService: deps.Services.AuthService,
		out:         os.Stdout,
	}
	if err := cli.run(ctx, os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			logger.Error().Err(err).Msg("Command failed")
		}
		database.Close()
		os.Exit(1)
	}
}
