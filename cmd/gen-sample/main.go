package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/pbpsplit/internal/sampledata"
	"github.com/okian/pbpsplit/pkg/logger"
)

func main() {
	defaults := sampledata.DefaultConfig()
	var (
		dir          = flag.String("dir", ".", "Directory receiving teams.csv and pbp_{season}.csv")
		season       = flag.Int("season", defaults.Season, "Season year")
		weeks        = flag.Int("weeks", defaults.Weeks, "Number of weeks to schedule")
		playsPerGame = flag.Int("plays", defaults.PlaysPerGame, "Plays per game")
		seed         = flag.Int64("seed", defaults.Seed, "Random seed")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Named("gen-sample")

	cfg := sampledata.Config{
		Season:       *season,
		Weeks:        *weeks,
		PlaysPerGame: *playsPerGame,
		Seed:         *seed,
	}
	s, err := sampledata.Generate(cfg)
	if err != nil {
		log.Fatal(ctx, "failed to generate sample season", logger.Error(err))
	}
	teamsPath, playsPath, err := s.Write(*dir)
	if err != nil {
		log.Fatal(ctx, "failed to write sample season", logger.Error(err))
	}

	log.Info(ctx, "sample season written",
		logger.String("teams", teamsPath),
		logger.String("plays", playsPath),
		logger.Int("games", len(s.Games)),
		logger.Int("rows", len(s.Plays)),
		logger.Int64("seed", cfg.Seed),
	)
}

func showHelp() {
	os.Stdout.WriteString(`Sample Season Generator
=======================

Writes a synthetic teams table and play-by-play table that the partition
and analyze tools accept.

Usage:
  go run ./cmd/gen-sample [options]

Options:
  -dir string
        Output directory (default ".")
  -season int
        Season year (default 2024)
  -weeks int
        Number of weeks, 1 to 31 (default 17)
  -plays int
        Plays per game (default 120)
  -seed int
        Random seed (default 1)
  -help
        Show this help message

Examples:
  # Generate the default season, then split it
  go run ./cmd/gen-sample -dir .
  go run ./cmd/partition

  # A small season for quick experiments
  go run ./cmd/gen-sample -weeks 2 -plays 40 -dir /tmp/pbp
`)
}
