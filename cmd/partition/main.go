package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	app "github.com/okian/pbpsplit/internal/app"
	"github.com/okian/pbpsplit/internal/config"
	"github.com/okian/pbpsplit/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM; checked between chunks.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	res, err := run(ctx, loggerInstance)
	stop()
	if err != nil {
		loggerInstance.Fatal(ctx, "team split failed", logger.Error(err))
	}

	fmt.Printf("\nTeam split complete!\n")
	fmt.Printf("Individual team files saved in: %s (%d files)\n", filepath.Dir(res.SummaryPath), len(res.Artifacts))
	_ = logger.Sync()
}

func run(ctx context.Context, log logger.Logger) (*app.Result, error) {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithConfig(cfg),
	)
	return svc.Partition(ctx)
}
