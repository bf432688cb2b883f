// Package sampledata generates a deterministic synthetic season of teams and
// plays shaped like the nflverse play-by-play release.
package sampledata

import (
	"fmt"
	"time"
)

// Default generator configuration.
const (
	DefaultSeason       = 2024
	DefaultWeeks        = 17
	DefaultPlaysPerGame = 120
	DefaultSeed         = 1
)

// maxWeeks is the number of distinct rounds a 32-team round robin offers.
const maxWeeks = 31

// Config holds configuration for the generator.
type Config struct {
	Season       int   // season year, also the year of the first game date
	Weeks        int   // every team plays once per week
	PlaysPerGame int   // rows per game, including the opening row
	Seed         int64 // same seed, same season
}

// DefaultConfig returns the configuration used by cmd/gen-sample.
func DefaultConfig() Config {
	return Config{
		Season:       DefaultSeason,
		Weeks:        DefaultWeeks,
		PlaysPerGame: DefaultPlaysPerGame,
		Seed:         DefaultSeed,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Season <= 0 {
		return fmt.Errorf("%w: season must be positive, got %d", ErrInvalidSample, c.Season)
	}
	if c.Weeks <= 0 || c.Weeks > maxWeeks {
		return fmt.Errorf("%w: weeks must be within [1, %d], got %d", ErrInvalidSample, maxWeeks, c.Weeks)
	}
	if c.PlaysPerGame < 2 {
		return fmt.Errorf("%w: plays per game must be at least 2, got %d", ErrInvalidSample, c.PlaysPerGame)
	}
	return nil
}

// kickoff returns the date of week 1, the first Thursday after Labor Day.
func (c Config) kickoff() time.Time {
	d := time.Date(c.Season, time.September, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 3)
}
