// Package main applies the snapshot store schema for the wa-broadcast service.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/infrastructure/migrate"
)

const defaultRollbackSteps = 1

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides storage.migrations_path)")
	flag.IntVar(&steps, "steps", defaultRollbackSteps, "Number of migrations to roll back")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" || migrationsPath == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if databaseURL == "" {
			databaseURL = cfg.Database.GetURL()
		}
		if migrationsPath == "" {
			migrationsPath = cfg.Storage.MigrationsPath
		}
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command := args[0]; command {
	case "up":
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}

	case "down":
		if err := runner.Rollback(steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}
		printVersion(runner, logger)

	case "version":
		printVersion(runner, logger)

	default:
		logger.Fatal("Unknown command, use 'up', 'down', or 'version'", zap.String("command", command))
	}
}

func printVersion(runner *migrate.Runner, logger *zap.Logger) {
	version, dirty, err := runner.Version()
	if err != nil {
		logger.Fatal("Failed to get version", zap.Error(err))
	}
	if dirty {
		fmt.Printf("Current version: %d (dirty)\n", version)
		return
	}
	fmt.Printf("Current version: %d\n", version)
}
