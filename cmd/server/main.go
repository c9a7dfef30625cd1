package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/config"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/container"
	"github.com/campusmatch/campusmatch-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", logger.FormatText)
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger.InitFromConfig(cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		logger.Error("failed to build container", "err", err)
		os.Exit(1)
	}
	defer c.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := c.Server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
