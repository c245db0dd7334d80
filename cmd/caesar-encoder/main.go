package main

import (
	"fmt"
	"os"
	"runtime"

	"caesar-encoder/internal/app"
	"caesar-encoder/internal/config"
	"caesar-encoder/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "caesar-encoder: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	appLogger := logger.New(cfg.Level(), cfg.JSONLogs)
	appLogger.Debug("Main", "runtime", map[string]interface{}{
		"go_version": runtime.Version(),
		"num_cpu":    runtime.NumCPU(),
		"log_level":  cfg.Level().String(),
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}

	appLogger.Info("Main", "application terminated", nil)
	return nil
}
