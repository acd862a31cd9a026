package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/accounts/internal/app"
	"github.com/skillsenselab/accounts/internal/config"
	"github.com/skillsenselab/accounts/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging, cfg.Service.Name)
	log := logger.GetGlobalLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Starting accounts service", map[string]interface{}{
		"version": cfg.Service.Version,
		"addr":    a.Addr(),
	})

	if err := a.Run(ctx); err != nil {
		log.Error("Shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
