package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leaguehub/internal/config"
	"leaguehub/internal/logging"
	"leaguehub/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "leaguehub",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server init failed", "error", err)
		os.Exit(1)
	}
	if err := srv.Run(ctx, stop); err != nil {
		logger.Error("server run failed", "error", err)
		os.Exit(1)
	}
}
