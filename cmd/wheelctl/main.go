package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wheelspin-backend/internal/common/config"
	"wheelspin-backend/internal/common/logger"
	"wheelspin-backend/internal/features/wheel/client"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(os.Stderr, "wheelctl", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{
		api:         client.NewClient(&http.Client{Timeout: cfg.Client.Timeout}, cfg.Client.BaseURL, log),
		out:         os.Stdout,
		revealDelay: cfg.Wheel.RevealDelay,
		extraTurns:  cfg.Wheel.ExtraTurns,
		logger:      log,
	}

	if err := cli.run(ctx, os.Args); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
