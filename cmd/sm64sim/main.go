// Package main is the headless simulation driver: it loads a level, runs
// its input script against the character core and optionally records a
// replay.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/config"
	"github.com/Faultbox/libsm64-go/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== sm64sim ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim, err := newSimulation(cfg)
	if err != nil {
		logger.Error("failed to set up simulation", zap.Error(err))
		os.Exit(1)
	}
	defer sim.Close()

	if path := cfg.Data.Verify; path != "" {
		if err := sim.Verify(path); err != nil {
			logger.Error("replay check failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("replay matches")
		return
	}

	if err := sim.Run(ctx); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulation finished")
}
