package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/arena"
)

type Config struct {
	Concurrency int
	Debug       bool
}

var config Config

func main() {
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Number of parallel branches")
	flag.BoolVar(&config.Debug, "debug", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if config.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, err := arena.New(logger, config.Concurrency).Run(ctx)
	if err != nil {
		logger.Error("arena failed", "error", err)
		cancel()
		os.Exit(1)
	}

	if !report.OK() {
		logger.Error("engine verification failed", "mismatches", report.Mismatches, "losses", report.Losses)
		cancel()
		os.Exit(1)
	}
}
