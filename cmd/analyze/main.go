package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	app "github.com/okian/pbpsplit/internal/app"
	"github.com/okian/pbpsplit/internal/config"
	"github.com/okian/pbpsplit/internal/domain/analysis"
	"github.com/okian/pbpsplit/pkg/logger"
)

const defaultTeam = "KC"

func main() {
	team := flag.String("team", defaultTeam, "Team abbreviation to analyze")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, *team); err != nil {
		logger.Get().Error(ctx, "analysis failed", logger.String("team", *team), logger.Error(err))
	}
}

func run(ctx context.Context, w io.Writer, team string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	fmt.Fprintln(w, "NFL Team Analysis Example")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	svc := app.New(app.WithLogger(logger.Get()), app.WithConfig(cfg))
	report, err := svc.Analyze(ctx, team)
	if errors.Is(err, analysis.ErrTeamNotFound) {
		fmt.Fprintf(w, "Team %s not found. Available teams: %s\n", team, strings.Join(analysis.Abbrs(), ", "))
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := report.WriteTo(w); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCreating visualizations for %s...\n", team)
	fmt.Fprintln(w, "(Visualization code would go here - students can build this out!)")
	fmt.Fprintln(w, "Ideas for charts:")
	for _, idea := range analysis.VisualizationIdeas() {
		fmt.Fprintf(w, "- %s\n", idea)
	}

	fmt.Fprintf(w, "\nData loaded successfully! %d plays, %d with %s on offense.\n", report.TotalPlays, report.OffensivePlays, team)
	fmt.Fprintln(w, "\nNext steps for students:")
	for i, step := range nextSteps {
		fmt.Fprintf(w, "%d. %s\n", i+1, step)
	}
	return nil
}

var nextSteps = []string{
	"Explore the data: columns, summary statistics, sample rows",
	"Filter for specific situations: red zone, 3rd down, etc.",
	"Calculate additional metrics: success rate, explosive plays, etc.",
	"Create visualizations of the ideas above",
	"Compare with other teams by loading their files",
}
