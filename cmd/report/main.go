package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"nba-stats-report/internal/config"
	"nba-stats-report/internal/logging"
	"nba-stats-report/internal/run"
)

const appVersion = "dev"

func main() {
	// Local .env files are optional; real deployments pass env directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-stats-report",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := run.New(ctx, cfg, logger, os.Stdout)
	if err != nil {
		logging.Error(logger, "pipeline setup failed", err)
		os.Exit(1)
	}

	if err := pipeline.Run(ctx); err != nil {
		logging.Error(logger, "pipeline run failed", err)
		os.Exit(1)
	}
}
