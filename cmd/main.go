package main

import (
	"context"
	"errors"
	"os"

	"cover-meter/config"
	"cover-meter/internal/container"
	"cover-meter/internal/domain/entity"
	"cover-meter/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Logger.Fatalf("Failed to configure logger: %v", err)
	}

	// Каталог из аргумента имеет приоритет над IMAGE_DIR
	dir := cfg.ImageDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	appContainer, err := container.Build(cfg, os.Stdout)
	if err != nil {
		logger.Logger.Fatalf("Failed to build application: %v", err)
	}

	logger.WithField("dir", dir).Info("Selected path")

	summary, err := appContainer.BatchService.Run(dir)
	if err != nil {
		if errors.Is(err, entity.ErrMissingDirectory) {
			logger.Logger.Fatal("Image directory is required: pass it as an argument or set IMAGE_DIR")
		}
		logger.Logger.Fatalf("Batch failed: %v", err)
	}

	ctx := context.Background()
	for _, n := range appContainer.Notifiers {
		if err := n.Notify(ctx, summary); err != nil {
			logger.WithError(err).Warn("Failed to deliver summary")
		}
	}
}
