package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"FleetKeeper/internal/cli/commands"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	if cfg.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		sugar := logger.Sugar()
		service.SetLogger(sugar)
		defer func() {
			if err := logger.Sync(); err != nil {
				sugar.Errorw("Failed to sync logger", "error", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("FleetKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
