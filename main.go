package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"ms-discovery/internal/config"
	"ms-discovery/internal/discovery"
	"ms-discovery/internal/logger"
	"ms-discovery/internal/report"
	"ms-discovery/internal/search"
)

func main() {
	bootLogger := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		bootLogger.Debug("CONFIG", ".env file not found, using environment variables")
	} else {
		bootLogger.Debug("CONFIG", "Loaded environment variables from .env file")
	}

	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		bootLogger.Fatal("CONFIG", err.Error())
	}
}

// run performs one search over the configured artists and prints the report
// to stdout. Only a configuration error is returned; lookup failures are
// logged and leave gaps in the report.
func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(stderr, logger.ParseLevel(cfg.Log.Level), cfg.Log.Format == "json")
	log.Info("APP", fmt.Sprintf("Starting artist event search (run %s, dma %d)", uuid.NewString(), cfg.Discovery.DMAID))

	client := &http.Client{Timeout: cfg.Discovery.Timeout}
	fetcher := discovery.NewFetcher(client, cfg.Discovery, log)
	svc := search.NewService(fetcher, stdout, cfg.Delay, log)

	events := svc.Run(ctx, cfg.Artists)

	if err := report.Render(stdout, events); err != nil {
		log.Error("REPORT", fmt.Sprintf("Failed to write report: %v", err))
	}
	return nil
}
