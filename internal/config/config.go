// Package config defines the partition and analysis tool configuration and
// its loading hooks.
//
// Defaults live in New and reproduce the fixed relative paths the tools have
// always used, so an empty environment behaves as before. External errors are
// wrapped with this package's sentinel errors.
package config

// Default configuration values.
const (
	DefaultTeamsPath = "teams.csv"
	DefaultPBPPath   = "pbp_2024.csv"
	DefaultOutputDir = "team_data"
	DefaultSeason    = 2024
	DefaultChunkSize = 10_000
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TeamsPath is the team metadata table (team_abbr, team_name, ...).
	TeamsPath string `koanf:"teams_path"`

	// PBPPath is the season-wide play-by-play table.
	PBPPath string `koanf:"pbp_path"`

	// OutputDir receives one CSV per team plus README.md.
	OutputDir string `koanf:"output_dir"`

	// Season is embedded in artifact names and the summary title.
	Season int `koanf:"season"`

	// ChunkSize bounds the number of play rows held per read. It caps peak
	// memory only; the output does not depend on it.
	ChunkSize int `koanf:"chunk_size"`

	// MetricsPath, when set, receives a Prometheus textfile after each run.
	MetricsPath string `koanf:"metrics_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		TeamsPath: DefaultTeamsPath,
		PBPPath:   DefaultPBPPath,
		OutputDir: DefaultOutputDir,
		Season:    DefaultSeason,
		ChunkSize: DefaultChunkSize,
	}
}
