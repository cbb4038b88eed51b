package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/flowgate/internal/buildinfo"
	"github.com/dmitrijs2005/flowgate/internal/client/cli"
	"github.com/dmitrijs2005/flowgate/internal/client/config"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}
